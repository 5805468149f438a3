package cmd

// Config holds all runtime settings. Values come from the environment with
// local-development fallbacks.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret   string
	JWTTTLHours int

	// Facility is where items are cleaned; pickups route through it until
	// drivers start reporting positions.
	FacilityLat     float64
	FacilityLng     float64
	FacilityAddress string

	// SendGrid is optional; when the key is empty notifications go to the
	// log.
	SendGridAPIKey string
	SenderName     string
	SenderEmail    string

	SupportWhatsApp string
	SupportPhone    string
	SupportEmail    string
}
