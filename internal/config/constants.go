package config

const (
	ProductionEnv = "production"
	APIVersion    = "1.0.0"

	MailDriverSMTP = "smtp"
	MailDriverStub = "stub"
)

var (
	AllowedOrigins = []string{
		"http://localhost:3000",
		"http://localhost:3001",
		"http://localhost:5173",
		"http://127.0.0.1:5173",
		"https://heyprachar.com",
		"https://www.heyprachar.com",
	}
	AllowedMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	AllowedHeaders = []string{"Content-Type", "Authorization", "Accept"}

	RequiredFields = []string{
		"name", "email", "phone", "industry", "targetAudience",
		"businessName", "yourRole", "problemStatement",
	}
	OptionalFields = []string{
		"whatsapp", "customIndustry", "services", "customTargetAudience",
		"socialPlatforms", "howDidYouKnow", "meetingTime",
	}
)
