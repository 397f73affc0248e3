// Package catalog holds the menu: categories and the menu items priced within them.
//
// Key business rules:
//   - Category titles are required and unique (uniqueness is enforced by storage)
//   - A category slug defaults to the slugified title
//   - Menu item prices are positive with two decimal places, at most 9999.99
//   - Every menu item belongs to exactly one category
package catalog
