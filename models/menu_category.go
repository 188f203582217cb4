package models

// Uncategorized is the first category offered by the menu editor.
const Uncategorized = "بلا تصنيف"

// SpecialMenuCategory holds the limited-time menu. Its items are purged when
// the limited menu is switched off in settings.
const SpecialMenuCategory = "قائمة خاصة (Limited)"

// MenuCategories lists the fixed menu sections in display order.
var MenuCategories = []string{
	Uncategorized,
	"Mix Arbe",
	"Salda",
	"Fata",
	"Pasta Arbe",
	"Berite",
	"Berite Extra",
	"Shawarma",
	"Kibelobania",
	"Kibe",
	"Kibe Cru",
	"Esfihas",
	"Esfihas Fsado",
	"Kafta",
	"Yabrak",
	"Falafel",
	"Bebidas",
	"Sobremesas",
	"Cola",
}
