package taxonomy

// Subcategory is one entry in the canonical category set.
type Subcategory struct {
	Slug             string `json:"slug"`
	Label            string `json:"label"`
	Interest         string `json:"interest"`
	PlaceholderImage string `json:"placeholder_image"`
}

// Interest is a top-level grouping of subcategories.
type Interest struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
}

const (
	// MiscSlug is the catch-all subcategory for unclassified businesses.
	MiscSlug = "miscellaneous"
	// MiscLabel is the display label every unresolvable input maps to.
	MiscLabel = "Miscellaneous"
)

// interests is the known top-level set.
var interests = []Interest{
	{Slug: "food-drink", Label: "Food & Drink"},
	{Slug: "beauty-wellness", Label: "Beauty & Wellness"},
	{Slug: "fitness-sport", Label: "Fitness & Sport"},
	{Slug: "home-services", Label: "Home Services"},
	{Slug: "retail-shopping", Label: "Retail & Shopping"},
	{Slug: "arts-entertainment", Label: "Arts & Entertainment"},
	{Slug: "auto-transport", Label: "Auto & Transport"},
	{Slug: "pets", Label: "Pets"},
	{Slug: "family-education", Label: "Family & Education"},
	{Slug: "professional-services", Label: "Professional Services"},
}

// subcategories is the canonical slug set. This is the taxonomy's source of
// truth: exactly one label and one placeholder image per slug. The 1:1
// mapping is enforced by tests, not at runtime.
var subcategories = []Subcategory{
	// Food & Drink
	{Slug: "restaurants", Label: "Restaurants", Interest: "food-drink", PlaceholderImage: "/images/placeholders/restaurants.jpg"},
	{Slug: "coffee-shops", Label: "Coffee Shops", Interest: "food-drink", PlaceholderImage: "/images/placeholders/coffee-shops.jpg"},
	{Slug: "bakeries", Label: "Bakeries", Interest: "food-drink", PlaceholderImage: "/images/placeholders/bakeries.jpg"},
	{Slug: "bars", Label: "Bars", Interest: "food-drink", PlaceholderImage: "/images/placeholders/bars.jpg"},
	{Slug: "fast-food", Label: "Fast Food", Interest: "food-drink", PlaceholderImage: "/images/placeholders/fast-food.jpg"},
	{Slug: "fine-dining", Label: "Fine Dining", Interest: "food-drink", PlaceholderImage: "/images/placeholders/fine-dining.jpg"},

	// Beauty & Wellness
	{Slug: "hair-salons", Label: "Hair Salons", Interest: "beauty-wellness", PlaceholderImage: "/images/placeholders/hair-salons.jpg"},
	{Slug: "barbers", Label: "Barbers", Interest: "beauty-wellness", PlaceholderImage: "/images/placeholders/barbers.jpg"},
	{Slug: "nail-salons", Label: "Nail Salons", Interest: "beauty-wellness", PlaceholderImage: "/images/placeholders/nail-salons.jpg"},
	{Slug: "spas", Label: "Spas", Interest: "beauty-wellness", PlaceholderImage: "/images/placeholders/spas.jpg"},
	{Slug: "massage-therapy", Label: "Massage Therapy", Interest: "beauty-wellness", PlaceholderImage: "/images/placeholders/massage-therapy.jpg"},
	{Slug: "skincare-clinics", Label: "Skincare Clinics", Interest: "beauty-wellness", PlaceholderImage: "/images/placeholders/skincare-clinics.jpg"},

	// Fitness & Sport
	{Slug: "gyms", Label: "Gyms", Interest: "fitness-sport", PlaceholderImage: "/images/placeholders/gyms.jpg"},
	{Slug: "yoga-studios", Label: "Yoga Studios", Interest: "fitness-sport", PlaceholderImage: "/images/placeholders/yoga-studios.jpg"},
	{Slug: "pilates-studios", Label: "Pilates Studios", Interest: "fitness-sport", PlaceholderImage: "/images/placeholders/pilates-studios.jpg"},
	{Slug: "martial-arts", Label: "Martial Arts", Interest: "fitness-sport", PlaceholderImage: "/images/placeholders/martial-arts.jpg"},
	{Slug: "swimming-pools", Label: "Swimming Pools", Interest: "fitness-sport", PlaceholderImage: "/images/placeholders/swimming-pools.jpg"},

	// Home Services
	{Slug: "plumbers", Label: "Plumbers", Interest: "home-services", PlaceholderImage: "/images/placeholders/plumbers.jpg"},
	{Slug: "electricians", Label: "Electricians", Interest: "home-services", PlaceholderImage: "/images/placeholders/electricians.jpg"},
	{Slug: "cleaning-services", Label: "Cleaning Services", Interest: "home-services", PlaceholderImage: "/images/placeholders/cleaning-services.jpg"},
	{Slug: "landscaping", Label: "Landscaping", Interest: "home-services", PlaceholderImage: "/images/placeholders/landscaping.jpg"},
	{Slug: "painters", Label: "Painters", Interest: "home-services", PlaceholderImage: "/images/placeholders/painters.jpg"},
	{Slug: "handymen", Label: "Handymen", Interest: "home-services", PlaceholderImage: "/images/placeholders/handymen.jpg"},

	// Retail & Shopping
	{Slug: "clothing-boutiques", Label: "Clothing Boutiques", Interest: "retail-shopping", PlaceholderImage: "/images/placeholders/clothing-boutiques.jpg"},
	{Slug: "bookstores", Label: "Bookstores", Interest: "retail-shopping", PlaceholderImage: "/images/placeholders/bookstores.jpg"},
	{Slug: "florists", Label: "Florists", Interest: "retail-shopping", PlaceholderImage: "/images/placeholders/florists.jpg"},
	{Slug: "gift-shops", Label: "Gift Shops", Interest: "retail-shopping", PlaceholderImage: "/images/placeholders/gift-shops.jpg"},
	{Slug: "grocery-stores", Label: "Grocery Stores", Interest: "retail-shopping", PlaceholderImage: "/images/placeholders/grocery-stores.jpg"},
	{Slug: "butchers", Label: "Butchers", Interest: "retail-shopping", PlaceholderImage: "/images/placeholders/butchers.jpg"},

	// Arts & Entertainment
	{Slug: "art-galleries", Label: "Art Galleries", Interest: "arts-entertainment", PlaceholderImage: "/images/placeholders/art-galleries.jpg"},
	{Slug: "museums", Label: "Museums", Interest: "arts-entertainment", PlaceholderImage: "/images/placeholders/museums.jpg"},
	{Slug: "live-music-venues", Label: "Live Music Venues", Interest: "arts-entertainment", PlaceholderImage: "/images/placeholders/live-music-venues.jpg"},
	{Slug: "cinemas", Label: "Cinemas", Interest: "arts-entertainment", PlaceholderImage: "/images/placeholders/cinemas.jpg"},
	{Slug: "nightclubs", Label: "Nightclubs", Interest: "arts-entertainment", PlaceholderImage: "/images/placeholders/nightclubs.jpg"},

	// Auto & Transport
	{Slug: "mechanics", Label: "Mechanics", Interest: "auto-transport", PlaceholderImage: "/images/placeholders/mechanics.jpg"},
	{Slug: "car-washes", Label: "Car Washes", Interest: "auto-transport", PlaceholderImage: "/images/placeholders/car-washes.jpg"},
	{Slug: "tyre-fitters", Label: "Tyre Fitters", Interest: "auto-transport", PlaceholderImage: "/images/placeholders/tyre-fitters.jpg"},
	{Slug: "driving-schools", Label: "Driving Schools", Interest: "auto-transport", PlaceholderImage: "/images/placeholders/driving-schools.jpg"},

	// Pets
	{Slug: "veterinarians", Label: "Veterinarians", Interest: "pets", PlaceholderImage: "/images/placeholders/veterinarians.jpg"},
	{Slug: "pet-grooming", Label: "Pet Grooming", Interest: "pets", PlaceholderImage: "/images/placeholders/pet-grooming.jpg"},
	{Slug: "pet-stores", Label: "Pet Stores", Interest: "pets", PlaceholderImage: "/images/placeholders/pet-stores.jpg"},

	// Family & Education
	{Slug: "tutors", Label: "Tutors", Interest: "family-education", PlaceholderImage: "/images/placeholders/tutors.jpg"},
	{Slug: "daycares", Label: "Daycares", Interest: "family-education", PlaceholderImage: "/images/placeholders/daycares.jpg"},
	{Slug: "music-lessons", Label: "Music Lessons", Interest: "family-education", PlaceholderImage: "/images/placeholders/music-lessons.jpg"},

	// Professional Services
	{Slug: "accountants", Label: "Accountants", Interest: "professional-services", PlaceholderImage: "/images/placeholders/accountants.jpg"},
	{Slug: "attorneys", Label: "Attorneys", Interest: "professional-services", PlaceholderImage: "/images/placeholders/attorneys.jpg"},
	{Slug: "photographers", Label: "Photographers", Interest: "professional-services", PlaceholderImage: "/images/placeholders/photographers.jpg"},
	{Slug: "real-estate-agents", Label: "Real Estate Agents", Interest: "professional-services", PlaceholderImage: "/images/placeholders/real-estate-agents.jpg"},
	{Slug: "travel-agencies", Label: "Travel Agencies", Interest: "professional-services", PlaceholderImage: "/images/placeholders/travel-agencies.jpg"},

	// Catch-all
	{Slug: MiscSlug, Label: MiscLabel, Interest: "professional-services", PlaceholderImage: "/images/placeholders/miscellaneous.jpg"},
}

// aliases maps common free-form inputs to canonical slugs. Grown from
// observed data; lookups are case-insensitive.
var aliases = map[string]string{
	"cafe":          "coffee-shops",
	"cafes":         "coffee-shops",
	"coffee":        "coffee-shops",
	"coffeeshop":    "coffee-shops",
	"restaurant":    "restaurants",
	"eatery":        "restaurants",
	"diner":         "restaurants",
	"bakery":        "bakeries",
	"bar":           "bars",
	"pub":           "bars",
	"pubs":          "bars",
	"takeaway":      "fast-food",
	"takeaways":     "fast-food",
	"salon":         "hair-salons",
	"hairdresser":   "hair-salons",
	"hairdressers":  "hair-salons",
	"barber":        "barbers",
	"barbershop":    "barbers",
	"spa":           "spas",
	"massage":       "massage-therapy",
	"gym":           "gyms",
	"fitness":       "gyms",
	"yoga":          "yoga-studios",
	"pilates":       "pilates-studios",
	"plumber":       "plumbers",
	"plumbing":      "plumbers",
	"electrician":   "electricians",
	"cleaner":       "cleaning-services",
	"cleaners":      "cleaning-services",
	"gardener":      "landscaping",
	"gardening":     "landscaping",
	"painter":       "painters",
	"handyman":      "handymen",
	"boutique":      "clothing-boutiques",
	"bookshop":      "bookstores",
	"florist":       "florists",
	"grocer":        "grocery-stores",
	"supermarket":   "grocery-stores",
	"butcher":       "butchers",
	"butchery":      "butchers",
	"gallery":       "art-galleries",
	"museum":        "museums",
	"cinema":        "cinemas",
	"movies":        "cinemas",
	"nightclub":     "nightclubs",
	"club":          "nightclubs",
	"mechanic":      "mechanics",
	"garage":        "mechanics",
	"auto-repair":   "mechanics",
	"carwash":       "car-washes",
	"vet":           "veterinarians",
	"vets":          "veterinarians",
	"veterinary":    "veterinarians",
	"groomer":       "pet-grooming",
	"tutor":         "tutors",
	"tutoring":      "tutors",
	"daycare":       "daycares",
	"creche":        "daycares",
	"accountant":    "accountants",
	"lawyer":        "attorneys",
	"lawyers":       "attorneys",
	"attorney":      "attorneys",
	"photographer":  "photographers",
	"photography":   "photographers",
	"estate-agent":  "real-estate-agents",
	"estate-agents": "real-estate-agents",
	"realtor":       "real-estate-agents",
	"travel-agent":  "travel-agencies",
	"other":         MiscSlug,
	"misc":          MiscSlug,
	"general":       MiscSlug,
	"uncategorized": MiscSlug,
}

// representative maps an interest slug to the subcategory shown when only
// the interest is known.
var representative = map[string]string{
	"food-drink":            "restaurants",
	"beauty-wellness":       "hair-salons",
	"fitness-sport":         "gyms",
	"home-services":         "plumbers",
	"retail-shopping":       "clothing-boutiques",
	"arts-entertainment":    "art-galleries",
	"auto-transport":        "mechanics",
	"pets":                  "veterinarians",
	"family-education":      "tutors",
	"professional-services": "accountants",
}
