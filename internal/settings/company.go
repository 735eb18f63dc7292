package settings

// CompanySettings is the contractor branding printed on estimates.
type CompanySettings struct {
	Name          string `yaml:"name" json:"name" mapstructure:"name"`
	Address       string `yaml:"address" json:"address" mapstructure:"address"`
	Phone         string `yaml:"phone" json:"phone" mapstructure:"phone"`
	Email         string `yaml:"email" json:"email" mapstructure:"email"`
	Website       string `yaml:"website,omitempty" json:"website,omitempty" mapstructure:"website"`
	LicenseNumber string `yaml:"licenseNumber,omitempty" json:"licenseNumber,omitempty" mapstructure:"licenseNumber"`
	// Logo is a base64 encoded image.
	Logo string `yaml:"logo,omitempty" json:"logo,omitempty" mapstructure:"logo"`
}

// DefaultCompany returns placeholder branding for a fresh install.
func DefaultCompany() CompanySettings {
	return CompanySettings{
		Name:    "Your Painting Company",
		Address: "123 Main Street, City, State 12345",
		Phone:   "(555) 123-4567",
		Email:   "contact@yourcompany.com",
		Website: "www.yourcompany.com",
	}
}
