package menu

// Default returns the built-in restaurant menu. The returned catalog is
// freshly constructed on every call so callers can never alias each other's
// registry, but the item data itself is fixed.
func Default() *Catalog {
	return New(defaultItems())
}

func defaultItems() []Item {
	return []Item{
		// Pizza
		{ID: 1, Name: "Margherita Pizza", Price: 899, Category: CategoryPizza, Description: "Classic cheese and tomato pizza"},
		{ID: 2, Name: "Pepperoni Pizza", Price: 1099, Category: CategoryPizza, Description: "Loaded with pepperoni slices"},
		{ID: 3, Name: "Barbecue Chicken Pizza", Price: 1199, Category: CategoryPizza, Description: "Grilled chicken with BBQ sauce"},
		{ID: 4, Name: "Vegetable Pizza", Price: 999, Category: CategoryPizza, Description: "Fresh vegetables and cheese"},
		{ID: 5, Name: "Supreme Pizza", Price: 1299, Category: CategoryPizza, Description: "Loaded with meat and vegetables"},
		{ID: 6, Name: "Hawaiian Pizza", Price: 1099, Category: CategoryPizza, Description: "Ham and pineapple combination"},

		// Burgers
		{ID: 7, Name: "Classic Beef Burger", Price: 399, Category: CategoryBurger, Description: "Juicy beef patty with cheese"},
		{ID: 8, Name: "Double Beef Burger", Price: 549, Category: CategoryBurger, Description: "Two beef patties with double cheese"},
		{ID: 9, Name: "Crispy Chicken Burger", Price: 349, Category: CategoryBurger, Description: "Crispy fried chicken fillet"},
		{ID: 10, Name: "Grilled Chicken Burger", Price: 379, Category: CategoryBurger, Description: "Grilled chicken with special sauce"},
		{ID: 11, Name: "Zinger Burger", Price: 399, Category: CategoryBurger, Description: "Spicy crispy chicken burger"},
		{ID: 12, Name: "Veggie Burger", Price: 299, Category: CategoryBurger, Description: "Vegetarian patty with fresh veggies"},
		{ID: 13, Name: "Fish Burger", Price: 369, Category: CategoryBurger, Description: "Breaded fish fillet with tartar sauce"},

		// Sandwiches
		{ID: 14, Name: "Club Sandwich", Price: 449, Category: CategorySandwich, Description: "Triple-decker with chicken"},
		{ID: 15, Name: "Grilled Chicken Sandwich", Price: 379, Category: CategorySandwich, Description: "Grilled chicken with lettuce and mayo"},
		{ID: 16, Name: "Crispy Chicken Sandwich", Price: 399, Category: CategorySandwich, Description: "Crispy chicken with special sauce"},
		{ID: 17, Name: "Steak Sandwich", Price: 549, Category: CategorySandwich, Description: "Tender beef steak with caramelized onions"},
		{ID: 18, Name: "Veggie Sandwich", Price: 299, Category: CategorySandwich, Description: "Fresh vegetables with cheese"},
		{ID: 19, Name: "Tuna Sandwich", Price: 379, Category: CategorySandwich, Description: "Tuna salad with fresh lettuce"},

		// Fried chicken
		{ID: 20, Name: "6 Piece Fried Chicken", Price: 899, Category: CategoryFriedChicken, Description: "6 pieces of crispy fried chicken"},
		{ID: 21, Name: "9 Piece Fried Chicken", Price: 1299, Category: CategoryFriedChicken, Description: "9 pieces of crispy fried chicken"},
		{ID: 22, Name: "12 Piece Fried Chicken", Price: 1699, Category: CategoryFriedChicken, Description: "12 pieces of crispy fried chicken"},
		{ID: 23, Name: "6 Chicken Wings", Price: 449, Category: CategoryFriedChicken, Description: "6 crispy chicken wings"},
		{ID: 24, Name: "12 Chicken Wings", Price: 799, Category: CategoryFriedChicken, Description: "12 crispy chicken wings"},
		{ID: 25, Name: "3 Chicken Strips", Price: 349, Category: CategoryFriedChicken, Description: "3 crispy chicken strips"},
		{ID: 26, Name: "5 Chicken Strips", Price: 549, Category: CategoryFriedChicken, Description: "5 crispy chicken strips"},
		{ID: 27, Name: "6 Chicken Nuggets", Price: 299, Category: CategoryFriedChicken, Description: "6 crispy chicken nuggets"},
		{ID: 28, Name: "9 Chicken Nuggets", Price: 399, Category: CategoryFriedChicken, Description: "9 crispy chicken nuggets"},
		{ID: 29, Name: "Popcorn Chicken", Price: 349, Category: CategoryFriedChicken, Description: "Bite-sized crispy chicken pieces"},

		// Fries
		{ID: 30, Name: "Regular Fries", Price: 149, Category: CategoryFries, Size: SizeMedium, Description: "Crispy golden french fries"},
		{ID: 31, Name: "Large Fries", Price: 199, Category: CategoryFries, Size: SizeLarge, Description: "Large serving of crispy fries"},
		{ID: 32, Name: "Cheese Fries", Price: 249, Category: CategoryFries, Description: "Fries topped with melted cheese"},
		{ID: 33, Name: "Loaded Fries", Price: 349, Category: CategoryFries, Description: "Fries with cheese, bacon, and special sauce"},
		{ID: 34, Name: "Curly Fries", Price: 229, Category: CategoryFries, Description: "Seasoned curly fries"},
		{ID: 35, Name: "Potato Wedges", Price: 199, Category: CategoryFries, Description: "Crispy seasoned potato wedges"},
		{ID: 36, Name: "Onion Rings", Price: 229, Category: CategoryFries, Description: "Crispy breaded onion rings"},

		// Drinks
		{ID: 37, Name: "Coca Cola", Price: 99, Category: CategoryDrinks, Description: "Chilled Coca Cola"},
		{ID: 38, Name: "Pepsi", Price: 99, Category: CategoryDrinks, Description: "Chilled Pepsi"},
		{ID: 39, Name: "Sprite", Price: 99, Category: CategoryDrinks, Description: "Lemon-lime soda"},
		{ID: 40, Name: "Fanta", Price: 99, Category: CategoryDrinks, Description: "Orange flavored soda"},
		{ID: 41, Name: "7UP", Price: 99, Category: CategoryDrinks, Description: "Lemon-lime soda"},
		{ID: 42, Name: "Mountain Dew", Price: 99, Category: CategoryDrinks, Description: "Citrus flavored soda"},
		{ID: 43, Name: "Mineral Water", Price: 50, Category: CategoryDrinks, Description: "Bottled mineral water"},
		{ID: 44, Name: "Lemonade", Price: 149, Category: CategoryDrinks, Description: "Fresh lemonade"},
		{ID: 45, Name: "Iced Tea", Price: 149, Category: CategoryDrinks, Description: "Refreshing iced tea"},
		{ID: 46, Name: "Vanilla Milkshake", Price: 249, Category: CategoryDrinks, Description: "Creamy vanilla milkshake"},
		{ID: 47, Name: "Chocolate Milkshake", Price: 249, Category: CategoryDrinks, Description: "Rich chocolate milkshake"},
		{ID: 48, Name: "Strawberry Milkshake", Price: 249, Category: CategoryDrinks, Description: "Fresh strawberry milkshake"},
		{ID: 49, Name: "Coffee", Price: 149, Category: CategoryDrinks, Description: "Hot brewed coffee"},
		{ID: 50, Name: "Cappuccino", Price: 199, Category: CategoryDrinks, Description: "Creamy cappuccino"},

		// Sweets
		{ID: 51, Name: "Vanilla Ice Cream", Price: 149, Category: CategorySweets, Description: "Classic vanilla ice cream (2 scoops)"},
		{ID: 52, Name: "Chocolate Ice Cream", Price: 149, Category: CategorySweets, Description: "Rich chocolate ice cream (2 scoops)"},
		{ID: 53, Name: "Strawberry Ice Cream", Price: 149, Category: CategorySweets, Description: "Fresh strawberry ice cream (2 scoops)"},
		{ID: 54, Name: "Hot Fudge Sundae", Price: 249, Category: CategorySweets, Description: "Ice cream with hot fudge sauce"},
		{ID: 55, Name: "Caramel Sundae", Price: 249, Category: CategorySweets, Description: "Ice cream with caramel sauce"},
		{ID: 56, Name: "Chocolate Brownie", Price: 199, Category: CategorySweets, Description: "Warm chocolate brownie"},
		{ID: 57, Name: "Brownie with Ice Cream", Price: 299, Category: CategorySweets, Description: "Warm brownie topped with ice cream"},
		{ID: 58, Name: "Glazed Donut", Price: 99, Category: CategorySweets, Description: "Classic glazed donut"},
		{ID: 59, Name: "Chocolate Donut", Price: 99, Category: CategorySweets, Description: "Chocolate frosted donut"},
		{ID: 60, Name: "3 Chocolate Chip Cookies", Price: 149, Category: CategorySweets, Description: "Freshly baked chocolate chip cookies"},
		{ID: 61, Name: "Apple Pie", Price: 199, Category: CategorySweets, Description: "Warm apple pie slice"},
		{ID: 62, Name: "Cheesecake", Price: 299, Category: CategorySweets, Description: "Creamy New York style cheesecake"},
	}
}
