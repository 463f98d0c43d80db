package services

import "finance-tracker/internal/models"

// Default category names referenced by the merchant pool and keyword table.
const (
	CategoryHousing        = "Housing"
	CategoryGroceries      = "Groceries"
	CategoryUtilities      = "Utilities"
	CategoryTransportation = "Transportation"
	CategoryHealthcare     = "Healthcare"
	CategoryInsurance      = "Insurance"
	CategoryDiningOut      = "Dining Out"
	CategoryEntertainment  = "Entertainment"
	CategoryShopping       = "Shopping"
	CategorySubscriptions  = "Subscriptions"
	CategoryTravel         = "Travel"
	CategorySalary         = "Salary"
)

// defaultMerchantPool lists merchants common in eurozone statements. The
// generator draws from it and the matcher learns its keywords.
func defaultMerchantPool() []models.MerchantInfo {
	return []models.MerchantInfo{
		// Housing
		{Name: "Monthly Rent", Category: CategoryHousing, Keywords: []string{"rent", "affitto", "miete", "landlord"}},
		{Name: "Condominium Fees", Category: CategoryHousing, Keywords: []string{"condominium", "condominio", "hoa"}},
		{Name: "Mortgage Payment", Category: CategoryHousing, Keywords: []string{"mortgage", "mutuo"}},
		{Name: "IKEA", Category: CategoryHousing, Keywords: []string{"ikea"}},

		// Groceries
		{Name: "Lidl", Category: CategoryGroceries, Keywords: []string{"lidl"}},
		{Name: "Aldi", Category: CategoryGroceries, Keywords: []string{"aldi"}},
		{Name: "Carrefour", Category: CategoryGroceries, Keywords: []string{"carrefour"}},
		{Name: "Esselunga", Category: CategoryGroceries, Keywords: []string{"esselunga"}},
		{Name: "Conad", Category: CategoryGroceries, Keywords: []string{"conad"}},
		{Name: "Coop", Category: CategoryGroceries, Keywords: []string{"coop"}},
		{Name: "Rewe", Category: CategoryGroceries, Keywords: []string{"rewe"}},
		{Name: "Albert Heijn", Category: CategoryGroceries, Keywords: []string{"albert heijn", "supermarket", "supermercato"}},

		// Utilities
		{Name: "Enel Energia", Category: CategoryUtilities, Keywords: []string{"enel", "electricity", "luce"}},
		{Name: "Vodafone", Category: CategoryUtilities, Keywords: []string{"vodafone"}},
		{Name: "TIM", Category: CategoryUtilities, Keywords: []string{"tim"}},
		{Name: "Fastweb", Category: CategoryUtilities, Keywords: []string{"fastweb", "internet", "fibra"}},
		{Name: "Water Utility", Category: CategoryUtilities, Keywords: []string{"water bill", "acqua"}},

		// Transportation
		{Name: "Uber", Category: CategoryTransportation, Keywords: []string{"uber"}},
		{Name: "Bolt", Category: CategoryTransportation, Keywords: []string{"bolt"}},
		{Name: "Shell", Category: CategoryTransportation, Keywords: []string{"shell"}},
		{Name: "Eni Station", Category: CategoryTransportation, Keywords: []string{"eni", "esso", "fuel", "benzina"}},
		{Name: "Trenitalia", Category: CategoryTransportation, Keywords: []string{"trenitalia", "italo", "train"}},
		{Name: "Deutsche Bahn", Category: CategoryTransportation, Keywords: []string{"bahn"}},
		{Name: "City Parking", Category: CategoryTransportation, Keywords: []string{"parking", "parcheggio"}},

		// Healthcare
		{Name: "Farmacia Centrale", Category: CategoryHealthcare, Keywords: []string{"farmacia", "pharmacy", "apotheke"}},
		{Name: "Dental Clinic", Category: CategoryHealthcare, Keywords: []string{"dental", "dentist", "clinic"}},
		{Name: "Medical Lab", Category: CategoryHealthcare, Keywords: []string{"doctor", "medical"}},

		// Insurance
		{Name: "Allianz", Category: CategoryInsurance, Keywords: []string{"allianz"}},
		{Name: "Generali", Category: CategoryInsurance, Keywords: []string{"generali"}},
		{Name: "AXA", Category: CategoryInsurance, Keywords: []string{"axa", "insurance", "assicurazione"}},

		// Dining Out
		{Name: "Starbucks", Category: CategoryDiningOut, Keywords: []string{"starbucks"}},
		{Name: "McDonald's", Category: CategoryDiningOut, Keywords: []string{"mcdonald"}},
		{Name: "Deliveroo", Category: CategoryDiningOut, Keywords: []string{"deliveroo"}},
		{Name: "Just Eat", Category: CategoryDiningOut, Keywords: []string{"just eat", "glovo"}},
		{Name: "Pizzeria da Michele", Category: CategoryDiningOut, Keywords: []string{"pizzeria", "pizza"}},
		{Name: "Trattoria Roma", Category: CategoryDiningOut, Keywords: []string{"trattoria", "restaurant", "ristorante"}},
		{Name: "Bar Centrale", Category: CategoryDiningOut, Keywords: []string{"cafe", "caffe", "bistro"}},

		// Entertainment
		{Name: "UCI Cinemas", Category: CategoryEntertainment, Keywords: []string{"cinema", "uci"}},
		{Name: "Steam", Category: CategoryEntertainment, Keywords: []string{"steam"}},
		{Name: "PlayStation Store", Category: CategoryEntertainment, Keywords: []string{"playstation"}},
		{Name: "Ticketone", Category: CategoryEntertainment, Keywords: []string{"ticketone", "concert", "ticket"}},

		// Shopping
		{Name: "Amazon", Category: CategoryShopping, Keywords: []string{"amazon", "amzn"}},
		{Name: "Zara", Category: CategoryShopping, Keywords: []string{"zara"}},
		{Name: "H&M", Category: CategoryShopping, Keywords: []string{"h&m"}},
		{Name: "MediaWorld", Category: CategoryShopping, Keywords: []string{"mediaworld", "mediamarkt"}},
		{Name: "Decathlon", Category: CategoryShopping, Keywords: []string{"decathlon"}},
		{Name: "Zalando", Category: CategoryShopping, Keywords: []string{"zalando"}},

		// Subscriptions
		{Name: "Netflix", Category: CategorySubscriptions, Keywords: []string{"netflix"}},
		{Name: "Spotify", Category: CategorySubscriptions, Keywords: []string{"spotify"}},
		{Name: "Disney+", Category: CategorySubscriptions, Keywords: []string{"disney"}},
		{Name: "iCloud", Category: CategorySubscriptions, Keywords: []string{"icloud", "subscription", "abbonamento"}},
		{Name: "Gym Membership", Category: CategorySubscriptions, Keywords: []string{"gym", "palestra"}},

		// Travel
		{Name: "Ryanair", Category: CategoryTravel, Keywords: []string{"ryanair"}},
		{Name: "easyJet", Category: CategoryTravel, Keywords: []string{"easyjet"}},
		{Name: "ITA Airways", Category: CategoryTravel, Keywords: []string{"ita airways", "flight", "airline"}},
		{Name: "Booking.com", Category: CategoryTravel, Keywords: []string{"booking.com", "hotel"}},
		{Name: "Airbnb", Category: CategoryTravel, Keywords: []string{"airbnb"}},
	}
}
