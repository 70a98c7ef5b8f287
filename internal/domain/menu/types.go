package menu

type Category string

const (
	CategoryAppetizer  Category = "Appetizer"
	CategoryMainCourse Category = "Main Course"
	CategoryDessert    Category = "Dessert"
	CategoryBeverage   Category = "Beverage"
	CategorySideDish   Category = "Side Dish"
	CategoryBreakfast  Category = "Breakfast"
	CategoryLunch      Category = "Lunch"
	CategoryDinner     Category = "Dinner"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryAppetizer, CategoryMainCourse, CategoryDessert, CategoryBeverage,
		CategorySideDish, CategoryBreakfast, CategoryLunch, CategoryDinner:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	category := Category(s)
	if !category.IsValid() {
		return "", ErrInvalidCategory
	}
	return category, nil
}
