package domain

// Catalog names recognised by the item factory
const (
	NameNormal    = "Normal Item"
	NameBrie      = "Aged Brie"
	NameBackstage = "Backstage passes to a TAFKAL80ETC concert"
	NameSulfuras  = "Sulfuras, Hand of Ragnaros"
	NameConjured  = "Conjured Mana Cake"
)
