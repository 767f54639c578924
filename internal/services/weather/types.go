package weather

// GetWeatherInput contains parameters for a weather lookup
type GetWeatherInput struct {
	// Location is a city name, postal code, or lat/long pair
	Location string
}

// GetWeatherOutput contains current conditions for the resolved location
type GetWeatherOutput struct {
	// Location is the resolved location name
	Location string

	// Region is the state or region of the resolved location
	Region string

	// Country is the country of the resolved location
	Country string

	// Condition is a short text description, such as "Partly cloudy"
	Condition string

	// TempC is the temperature in Celsius
	TempC float64

	// TempF is the temperature in Fahrenheit
	TempF float64

	// FeelsLikeF is the apparent temperature in Fahrenheit
	FeelsLikeF float64

	// Humidity is the relative humidity percentage
	Humidity int
}

// currentResponse mirrors the provider's current conditions payload
type currentResponse struct {
	Location struct {
		Name    string `json:"name"`
		Region  string `json:"region"`
		Country string `json:"country"`
	} `json:"location"`
	Current struct {
		TempC      float64 `json:"temp_c"`
		TempF      float64 `json:"temp_f"`
		FeelsLikeF float64 `json:"feelslike_f"`
		Humidity   int     `json:"humidity"`
		Condition  struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
}

// errorResponse mirrors the provider's error payload
type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
