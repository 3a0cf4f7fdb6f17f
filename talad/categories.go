package talad

import "github.com/kritsada/taladnat-bot/bilingual"

// CategoryOthers is the reserved "Others" category id.
const CategoryOthers = 99

// Subcategory is a leaf category.
type Subcategory struct {
	ID   int            `json:"id"`
	Name bilingual.Text `json:"name"`
	Slug string         `json:"slug"`
}

// Category is a top-level marketplace category.
type Category struct {
	ID            int            `json:"id"`
	Name          bilingual.Text `json:"name"`
	Slug          string         `json:"slug"`
	Subcategories []Subcategory  `json:"subcategories,omitempty"`
}

// Categories is the embedded category tree, used when the live tree
// cannot be fetched. IDs match the marketplace's actual ids.
var Categories = []Category{
	{
		ID: 1, Name: bilingual.Text{TH: "ยานยนต์", EN: "Automotive"}, Slug: "automotive",
		Subcategories: []Subcategory{
			{101, bilingual.Text{TH: "รถยนต์มือสอง", EN: "Used Cars"}, "cars"},
			{102, bilingual.Text{TH: "มอเตอร์ไซค์", EN: "Motorcycles"}, "motorcycles"},
			{103, bilingual.Text{TH: "อะไหล่รถยนต์", EN: "Car Parts"}, "car-parts"},
			{107, bilingual.Text{TH: "รถกระบะ", EN: "Pickup Trucks"}, "pickups"},
		},
	},
	{
		ID: 2, Name: bilingual.Text{TH: "อสังหาริมทรัพย์", EN: "Real Estate"}, Slug: "real-estate",
		Subcategories: []Subcategory{
			{201, bilingual.Text{TH: "บ้านเดี่ยว", EN: "House"}, "house"},
			{202, bilingual.Text{TH: "คอนโดมิเนียม", EN: "Condo"}, "condo"},
			{203, bilingual.Text{TH: "ที่ดิน", EN: "Land"}, "land"},
			{204, bilingual.Text{TH: "ทาวน์เฮ้าส์", EN: "Townhouse"}, "townhouse"},
		},
	},
	{
		ID: 3, Name: bilingual.Text{TH: "มือถือและแท็บเล็ต", EN: "Mobiles & Tablets"}, Slug: "mobiles",
		Subcategories: []Subcategory{
			{301, bilingual.Text{TH: "สมาร์ทโฟน", EN: "Smartphones"}, "smartphones"},
			{302, bilingual.Text{TH: "แท็บเล็ต", EN: "Tablets"}, "tablets"},
			{303, bilingual.Text{TH: "อุปกรณ์สวมใส่", EN: "Wearables"}, "wearables"},
		},
	},
	{
		ID: 4, Name: bilingual.Text{TH: "คอมพิวเตอร์", EN: "Computers & IT"}, Slug: "computers",
		Subcategories: []Subcategory{
			{401, bilingual.Text{TH: "โน้ตบุ๊ก", EN: "Laptops"}, "laptops"},
			{402, bilingual.Text{TH: "คอมพิวเตอร์ตั้งโต๊ะ", EN: "Desktops"}, "desktops"},
			{408, bilingual.Text{TH: "คีย์บอร์ด", EN: "Keyboards"}, "keyboards"},
		},
	},
	{
		ID: 5, Name: bilingual.Text{TH: "เครื่องใช้ไฟฟ้า", EN: "Home Appliances"}, Slug: "appliances",
		Subcategories: []Subcategory{
			{501, bilingual.Text{TH: "แอร์", EN: "Air Conditioners"}, "air-conditioners"},
			{502, bilingual.Text{TH: "ตู้เย็น", EN: "Refrigerators"}, "refrigerators"},
			{506, bilingual.Text{TH: "เครื่องทำน้ำอุ่น", EN: "Water Heaters"}, "water-heaters"},
		},
	},
	{
		ID: 6, Name: bilingual.Text{TH: "แฟชั่น", EN: "Fashion"}, Slug: "fashion",
		Subcategories: []Subcategory{
			{601, bilingual.Text{TH: "เสื้อผ้าผู้ชาย", EN: "Men's Clothing"}, "mens-clothing"},
			{602, bilingual.Text{TH: "เสื้อผ้าผู้หญิง", EN: "Women's Clothing"}, "womens-clothing"},
			{603, bilingual.Text{TH: "กระเป๋า", EN: "Bags"}, "bags"},
		},
	},
	{
		ID: CategoryOthers, Name: bilingual.Text{TH: "อื่นๆ", EN: "Others"}, Slug: "others",
	},
}

// FindCategory looks up a top-level category by id.
func FindCategory(id int) (Category, bool) {
	for _, cat := range Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// FindSubcategory looks up a subcategory by id across all categories,
// returning it with its parent.
func FindSubcategory(id int) (Category, Subcategory, bool) {
	for _, cat := range Categories {
		for _, sub := range cat.Subcategories {
			if sub.ID == id {
				return cat, sub, true
			}
		}
	}
	return Category{}, Subcategory{}, false
}

// CategoryPath renders "parent > subcategory" in the given locale, or
// just the category name when no subcategory is set.
func CategoryPath(categoryID, subcategoryID int, locale string) string {
	cat, ok := FindCategory(categoryID)
	if !ok {
		return ""
	}
	if subcategoryID != 0 {
		for _, sub := range cat.Subcategories {
			if sub.ID == subcategoryID {
				return cat.Name.In(locale) + " > " + sub.Name.In(locale)
			}
		}
	}
	return cat.Name.In(locale)
}
