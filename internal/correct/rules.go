package correct

// DefaultRules returns the built-in STT correction table for the menu
// vocabulary, in precedence order. Identity rules ("sprite" → "sprite") are
// deliberate: an exact hit short-circuits before any substring rule can
// corrupt an already-correct phrase.
func DefaultRules() []Rule {
	return []Rule{
		// Drinks
		{"ist", "iced tea"},
		{"ice t", "iced tea"},
		{"ice tea", "iced tea"},
		{"iced tea", "iced tea"},
		{"eyes tea", "iced tea"},
		{"i st", "iced tea"},
		{"iced", "iced tea"},

		{"sprite", "sprite"},
		{"right", "sprite"},
		{"spright", "sprite"},

		{"coke", "coca cola"},
		{"coca cola", "coca cola"},
		{"coca", "coca cola"},

		{"seven up", "7up"},
		{"7 up", "7up"},

		{"mountain do", "mountain dew"},
		{"mountain due", "mountain dew"},
		{"mountain dew", "mountain dew"},

		{"mineral", "mineral water"},
		{"water", "mineral water"},
		{"bottle water", "mineral water"},

		{"lemonade", "lemonade"},
		{"lemon aid", "lemonade"},

		{"milkshake", "milkshake"},
		{"milk shake", "milkshake"},
		{"shake", "milkshake"},

		{"coffee", "coffee"},
		{"cappuccino", "cappuccino"},

		// Fries
		{"phrase", "fries"},
		{"prize", "fries"},
		{"praise", "fries"},
		{"tries", "fries"},
		{"loaded phrase", "loaded fries"},
		{"loaded prize", "loaded fries"},
		{"loaded tries", "loaded fries"},
		{"loaded", "loaded fries"},
		{"floated fries", "loaded fries"},
		{"cheese fries", "cheese fries"},
		{"please fries", "cheese fries"},

		{"curly fries", "curly fries"},
		{"early fries", "curly fries"},

		{"regular fries", "regular fries"},
		{"large fries", "large fries"},

		{"potato wedges", "potato wedges"},
		{"wedges", "potato wedges"},
		{"wedge", "potato wedges"},

		{"onion rings", "onion rings"},
		{"onion ring", "onion rings"},
		{"rings", "onion rings"},
		{"fries", "fries"},
		{"fry", "fries"},
		{"french fries", "fries"},
		{"french fry", "fries"},

		// Burgers
		{"burger", "burger"},
		{"berger", "burger"},
		{"berg", "burger"},

		{"zinger", "zinger burger"},
		{"singer", "zinger burger"},
		{"singer burger", "zinger burger"},
		{"zing burger", "zinger burger"},

		{"beef burger", "beef burger"},
		{"chief burger", "beef burger"},
		{"classic burger", "classic beef burger"},

		{"double burger", "double beef burger"},
		{"double beef", "double beef burger"},
		{"trouble burger", "double beef burger"},

		{"fish burger", "fish burger"},
		{"wish burger", "fish burger"},

		{"veggie burger", "veggie burger"},
		{"veg burger", "veggie burger"},
		{"wedgie burger", "veggie burger"},
		{"vegetable burger", "veggie burger"},

		// Fried chicken
		{"grill chicken", "grilled chicken"},
		{"grilled chicken", "grilled chicken"},
		{"grilled", "grilled chicken"},
		{"girl chicken", "grilled chicken"},
		{"girl", "grilled chicken"},
		{"grill", "grilled chicken"},

		{"crispy chicken", "crispy chicken"},
		{"crispy", "crispy chicken"},
		{"crisp chicken", "crispy chicken"},
		{"christy chicken", "crispy chicken"},
		{"crisp", "crispy chicken"},

		{"nugget", "chicken nuggets"},
		{"nuggets", "chicken nuggets"},
		{"chicken nugget", "chicken nuggets"},
		{"chicken nuggets", "chicken nuggets"},

		{"wing", "chicken wings"},
		{"wings", "chicken wings"},
		{"chicken wing", "chicken wings"},
		{"chicken wings", "chicken wings"},
		{"wang", "chicken wings"},
		{"wangs", "chicken wings"},

		{"chicken strip", "chicken strips"},
		{"chicken strips", "chicken strips"},
		{"strips", "chicken strips"},
		{"strip", "chicken strips"},
		{"stripes", "chicken strips"},
		{"chicken stripes", "chicken strips"},

		{"popcorn", "popcorn chicken"},
		{"popcorn chicken", "popcorn chicken"},
		{"pop corn", "popcorn chicken"},
		{"pup corn", "popcorn chicken"},

		{"fried chicken", "fried chicken"},
		{"fry chicken", "fried chicken"},
		{"tried chicken", "fried chicken"},
		{"chicken pieces", "fried chicken"},

		// Pizza
		{"pizza", "pizza"},
		{"pita", "pizza"},
		{"peter", "pizza"},

		{"margarita", "margherita pizza"},
		{"margherita", "margherita pizza"},
		{"margareta", "margherita pizza"},
		{"cheese pizza", "margherita pizza"},

		{"pepperoni", "pepperoni pizza"},
		{"pepperoni pizza", "pepperoni pizza"},
		{"pepper only", "pepperoni pizza"},
		{"paper only", "pepperoni pizza"},

		{"bbq chicken", "barbecue chicken pizza"},
		{"barbeque chicken", "barbecue chicken pizza"},
		{"barbecue chicken", "barbecue chicken pizza"},
		{"bbq", "barbecue chicken pizza"},
		{"barbeq", "barbecue chicken pizza"},

		{"hawaiian", "hawaiian pizza"},
		{"hawaiian pizza", "hawaiian pizza"},
		{"hawaii", "hawaiian pizza"},
		{"pineapple pizza", "hawaiian pizza"},

		{"supreme", "supreme pizza"},
		{"supreme pizza", "supreme pizza"},

		{"veggie pizza", "vegetable pizza"},
		{"veg pizza", "vegetable pizza"},
		{"vegetable pizza", "vegetable pizza"},
		{"vegetarian pizza", "vegetable pizza"},

		// Sandwiches
		{"club", "club sandwich"},
		{"club sandwich", "club sandwich"},
		{"triple decker", "club sandwich"},

		{"grilled sandwich", "grilled chicken sandwich"},
		{"grill sandwich", "grilled chicken sandwich"},
		{"girl sandwich", "grilled chicken sandwich"},

		{"crispy sandwich", "crispy chicken sandwich"},
		{"crisp sandwich", "crispy chicken sandwich"},
		{"christy sandwich", "crispy chicken sandwich"},

		{"steak", "steak sandwich"},
		{"steak sandwich", "steak sandwich"},
		{"stake", "steak sandwich"},
		{"stake sandwich", "steak sandwich"},
		{"beef sandwich", "steak sandwich"},

		{"tuna", "tuna sandwich"},
		{"tuna sandwich", "tuna sandwich"},
		{"fish sandwich", "tuna sandwich"},

		{"veggie sandwich", "veggie sandwich"},
		{"veg sandwich", "veggie sandwich"},
		{"wedgie sandwich", "veggie sandwich"},
		{"vegetable sandwich", "veggie sandwich"},

		// Sweets
		{"vanilla", "vanilla ice cream"},
		{"vanilla ice cream", "vanilla ice cream"},
		{"manila", "vanilla ice cream"},

		{"chocolate", "chocolate ice cream"},
		{"chocolate ice cream", "chocolate ice cream"},
		{"choco", "chocolate ice cream"},

		{"strawberry", "strawberry ice cream"},
		{"strawberry ice cream", "strawberry ice cream"},
		{"straw berry", "strawberry ice cream"},

		{"brownie", "chocolate brownie"},
		{"chocolate brownie", "chocolate brownie"},
		{"choco brownie", "chocolate brownie"},
		{"browny", "chocolate brownie"},

		{"sundae", "sundae"},
		{"sunday", "sundae"},
		{"fudge", "hot fudge sundae"},
		{"caramel", "caramel sundae"},

		{"ice cream", "ice cream"},
		{"icecream", "ice cream"},
		{"ice-cream", "ice cream"},
		{"i scream", "ice cream"},
	}
}
