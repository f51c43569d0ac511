package chat

// Category is one of the fixed topic buckets the responder can match.
type Category string

const (
	CategoryGreeting    Category = "greeting"
	CategoryAppointment Category = "appointment"
	CategoryAyurveda    Category = "ayurveda"
	CategoryDoctors     Category = "doctors"
	CategoryServices    Category = "services"
	CategoryPricing     Category = "pricing"
	CategoryContact     Category = "contact"
)

// rule pairs a category with the keywords that select it. Rules are evaluated
// in slice order: an utterance containing keywords from several categories
// resolves to the earliest rule, so the order below is a contract.
type rule struct {
	category Category
	keywords []string
}

var rules = []rule{
	{CategoryGreeting, []string{"hello", "hi", "namaste"}},
	{CategoryAppointment, []string{"appointment", "book", "schedule"}},
	{CategoryAyurveda, []string{"ayurveda", "ayurvedic", "treatment"}},
	{CategoryDoctors, []string{"doctor", "physician", "specialist"}},
	{CategoryServices, []string{"service", "therapy", "panchakarma"}},
	{CategoryPricing, []string{"price", "cost", "fee"}},
	{CategoryContact, []string{"contact", "address", "phone", "location"}},
}

// responsePools maps each category to its candidate replies. Every pool is
// non-empty; Respond draws one entry pseudo-randomly.
var responsePools = map[Category][]string{
	CategoryGreeting: {
		"Namaste! I'm AyurBot, your Ayurveda assistant. How can I help you today?",
		"Welcome to AyurVeda Clinic! I'm here to help with your queries about our services.",
		"Hello! I'm here to assist you with Ayurvedic wellness and clinic information.",
	},
	CategoryAppointment: {
		"To book an appointment, please log in as a patient and use our booking system. You can select your preferred doctor, date, and time.",
		"Our doctors are available Monday to Friday, 9 AM to 5 PM. You can book consultations, follow-ups, or therapy sessions.",
		"For immediate appointment booking, please use the 'Login as Patient' option in the top right corner.",
	},
	CategoryAyurveda: {
		"Ayurveda is a 5000-year-old system of natural healing from India. It focuses on balancing mind, body, and consciousness.",
		"Ayurveda uses natural herbs, proper nutrition, and lifestyle practices to promote wellness and treat diseases.",
		"Our clinic specializes in authentic Ayurvedic treatments including Panchakarma, Rasayana therapy, and personalized wellness plans.",
	},
	CategoryDoctors: {
		"We have certified Ayurvedic practitioners specializing in Panchakarma, Rasayana therapy, Ayurvedic nutrition, and Marma therapy.",
		"Dr. Priya Sharma is our Panchakarma specialist, Dr. Rajesh Kumar focuses on Rasayana therapy, and Dr. Anita Patel specializes in Ayurvedic nutrition.",
		"All our doctors are registered Ayurvedic physicians with years of experience in traditional healing methods.",
	},
	CategoryServices: {
		"We offer consultations, Panchakarma treatments, herbal medicine, dietary counseling, and lifestyle guidance.",
		"Our services include Abhyanga (oil massage), Shirodhara, Udvartana, Nasya, and customized herbal formulations.",
		"We provide both preventive and curative treatments for various conditions like stress, digestive issues, joint problems, and more.",
	},
	CategoryPricing: {
		"Initial consultation starts from ₹500. Treatment costs vary based on the therapy and duration.",
		"We offer package deals for complete Panchakarma treatments. Please consult with our doctors for personalized pricing.",
		"Insurance coverage may be available for certain treatments. Please check with your provider.",
	},
	CategoryContact: {
		"You can reach us at admin@ayurvedaclinic.com or call +91 98765 43210.",
		"We're located at 123 Wellness Street, Health City. Open Monday to Friday, 9 AM to 5 PM.",
		"For urgent queries, use our appointment booking system or visit the clinic directly.",
	},
}

// FallbackReply is returned verbatim when no rule matches. It is not drawn
// from a pool.
const FallbackReply = "I understand you're asking about our Ayurvedic services. Could you please be more specific? You can ask about appointments, treatments, doctors, pricing, or contact information."

// QuickQuestions are the canned prompts shown under the chat input. Sending
// one is identical to typing its literal text.
var QuickQuestions = []string{
	"How do I book an appointment?",
	"What is Ayurveda?",
	"What services do you offer?",
	"How can I contact the clinic?",
}
