package yamlprofile

type YAMLProfile struct {
	Name      string        `yaml:"name"`
	Person    YAMLPerson    `yaml:"person"`
	Financial YAMLFinancial `yaml:"financial"`
}

type YAMLPerson struct {
	ChronologicalAge *float64 `yaml:"chronological_age"`
	HeightCM         *float64 `yaml:"height_cm"`
	WeightKG         *float64 `yaml:"weight_kg"`
	RestingHR        *float64 `yaml:"resting_hr"`
	ActivityLevel    string   `yaml:"activity_level"`
	Conditions       []string `yaml:"conditions"`
}

type YAMLFinancial struct {
	AnnualIncome   float64 `yaml:"annual_income"`
	LiquidAssets   float64 `yaml:"liquid_assets"`
	IlliquidAssets float64 `yaml:"illiquid_assets"`
	Liabilities    float64 `yaml:"liabilities"`
	HousingStatus  string  `yaml:"housing_status"`
}
