package usecase

type ExchangeRateRequest struct {
	SettingsPath string
}

type WeatherRequest struct {
	Program string
	Args    []string
}

// Endpoints are the base urls of the services the weather report reads.
type Endpoints struct {
	BOMBaseURL      string
	PostcodeBaseURL string
}
