// Package cart models the per-customer basket of menu items awaiting checkout.
//
// An Item copies the menu item's price at the moment it is added. Adding the same
// menu item twice produces two items; nothing is merged.
package cart
