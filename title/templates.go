// Package title suggests and scores marketplace listing titles.
//
// Suggestions are built from per-category templates that list which
// attributes buyers search for, in the order they expect to see them.
package title

import "github.com/kritsada/taladnat-bot/bilingual"

// Template describes the title attributes for one category.
type Template struct {
	CategoryID          int
	CriticalAttributes  []string
	ImportantAttributes []string
	OptionalAttributes  []string
	TitleFormat         string
	Examples            []bilingual.Text
}

var templates = []Template{
	{
		CategoryID:          3, // Mobiles & Tablets
		CriticalAttributes:  []string{"brand", "model", "storage"},
		ImportantAttributes: []string{"color", "condition"},
		OptionalAttributes:  []string{"warranty", "accessories"},
		TitleFormat:         "[Brand] [Model] [Storage] [Color] [Condition]",
		Examples: []bilingual.Text{
			{TH: "iPhone 13 Pro 256GB สีน้ำเงิน มือสอง สภาพดี", EN: "iPhone 13 Pro 256GB Blue Like New"},
			{TH: "Samsung Galaxy S23 Ultra 512GB สีดำ ศูนย์ไทย", EN: "Samsung Galaxy S23 Ultra 512GB Black Thai Version"},
		},
	},
	{
		CategoryID:          4, // Computers & IT
		CriticalAttributes:  []string{"brand", "model", "specs"},
		ImportantAttributes: []string{"condition", "warranty"},
		OptionalAttributes:  []string{"color", "accessories"},
		TitleFormat:         "[Brand] [Model] [CPU/RAM/Storage] [Condition]",
		Examples: []bilingual.Text{
			{TH: "MacBook Pro M1 16GB 512GB มือสองสภาพดี", EN: "MacBook Pro M1 16GB 512GB Good Condition"},
			{TH: "Dell XPS 13 i7 16GB 1TB SSD ศูนย์ไทย", EN: "Dell XPS 13 i7 16GB 1TB SSD Thai Warranty"},
		},
	},
	{
		CategoryID:          1, // Automotive
		CriticalAttributes:  []string{"brand", "model", "year"},
		ImportantAttributes: []string{"mileage", "transmission", "color"},
		OptionalAttributes:  []string{"owner_count", "service_history"},
		TitleFormat:         "[Brand] [Model] [Year] [Mileage]km [Details]",
		Examples: []bilingual.Text{
			{TH: "Honda Civic 2020 40,000km เกียร์ออโต้ สีขาว", EN: "Honda Civic 2020 40,000km Auto White"},
			{TH: "Toyota Fortuner 2019 80,000km 4WD ดีเซล", EN: "Toyota Fortuner 2019 80,000km 4WD Diesel"},
		},
	},
	{
		CategoryID:          2, // Real Estate
		CriticalAttributes:  []string{"type", "bedrooms", "area", "location"},
		ImportantAttributes: []string{"price_type", "floor"},
		OptionalAttributes:  []string{"view", "facilities"},
		TitleFormat:         "[Type] [Bedrooms]ห้องนอน [Area]ตรม. [Location]",
		Examples: []bilingual.Text{
			{TH: "คอนโด 2ห้องนอน 60ตรม. ใกล้ BTS อโศก", EN: "Condo 2BR 60sqm Near BTS Asoke"},
			{TH: "บ้านเดี่ยว 3ห้องนอน 200ตรม. ลาดพร้าว", EN: "House 3BR 200sqm Ladprao"},
		},
	},
	{
		CategoryID:          6, // Fashion
		CriticalAttributes:  []string{"brand", "item_type", "condition"},
		ImportantAttributes: []string{"size", "color", "material"},
		OptionalAttributes:  []string{"year", "limited_edition"},
		TitleFormat:         "[Brand] [Item] [Size] [Condition]",
		Examples: []bilingual.Text{
			{TH: "Louis Vuitton กระเป๋า Neverfull MM ของแท้ 100%", EN: "Louis Vuitton Neverfull MM Authentic"},
			{TH: "Nike Air Jordan 1 size 42 มือสองสภาพดี", EN: "Nike Air Jordan 1 Size 42 Good Condition"},
		},
	},
	{
		CategoryID:          5, // Home Appliances
		CriticalAttributes:  []string{"brand", "model", "capacity"},
		ImportantAttributes: []string{"condition", "age"},
		OptionalAttributes:  []string{"warranty", "energy_rating"},
		TitleFormat:         "[Brand] [Type] [Capacity] [Condition]",
		Examples: []bilingual.Text{
			{TH: "แอร์ Daikin 18,000 BTU อินเวอร์เตอร์ ประกัน 3 ปี", EN: "Daikin Air 18,000 BTU Inverter 3Y Warranty"},
			{TH: "ตู้เย็น Samsung 2 ประตู 16 คิว มือสอง", EN: "Samsung Fridge 2-Door 16cu Used"},
		},
	},
}

// TemplateForCategory returns the title template for a category, or nil
// when the category has no template.
func TemplateForCategory(categoryID int) *Template {
	for i := range templates {
		if templates[i].CategoryID == categoryID {
			return &templates[i]
		}
	}
	return nil
}

type attributeInfo struct {
	Example bilingual.Text
	Impact  bilingual.Text
}

var attributeInfos = map[string]attributeInfo{
	"brand": {
		Example: bilingual.Text{TH: "เช่น iPhone, Samsung, Toyota", EN: "e.g. iPhone, Samsung, Toyota"},
		Impact:  bilingual.Text{TH: "ช่วยให้ผู้ซื้อค้นหาเจอง่าย", EN: "Helps buyers find your listing"},
	},
	"model": {
		Example: bilingual.Text{TH: "เช่น 13 Pro, Galaxy S23, Civic", EN: "e.g. 13 Pro, Galaxy S23, Civic"},
		Impact:  bilingual.Text{TH: "บอกรุ่นที่แน่นอน", EN: "Specifies exact model"},
	},
	"storage": {
		Example: bilingual.Text{TH: "เช่น 128GB, 256GB, 512GB", EN: "e.g. 128GB, 256GB, 512GB"},
		Impact:  bilingual.Text{TH: "ข้อมูลสำคัญที่ผู้ซื้อต้องการรู้", EN: "Critical spec buyers need"},
	},
	"color": {
		Example: bilingual.Text{TH: "เช่น สีดำ, สีขาว, สีเงิน", EN: "e.g. Black, White, Silver"},
		Impact:  bilingual.Text{TH: "ช่วยให้ผู้ซื้อตัดสินใจเร็วขึ้น", EN: "Helps buyers decide faster"},
	},
	"condition": {
		Example: bilingual.Text{TH: "เช่น มือ1, มือสอง, สภาพดี", EN: "e.g. New, Used, Like New"},
		Impact:  bilingual.Text{TH: "สร้างความเชื่อมั่น", EN: "Builds trust"},
	},
	"year": {
		Example: bilingual.Text{TH: "เช่น 2020, 2021, 2023", EN: "e.g. 2020, 2021, 2023"},
		Impact:  bilingual.Text{TH: "บอกอายุของสินค้า", EN: "Shows item age"},
	},
	"mileage": {
		Example: bilingual.Text{TH: "เช่น 50,000km, 80,000km", EN: "e.g. 50,000km, 80,000km"},
		Impact:  bilingual.Text{TH: "ข้อมูลสำคัญสำหรับรถยนต์", EN: "Critical for vehicles"},
	},
	"size": {
		Example: bilingual.Text{TH: "เช่น S, M, L, Size 42", EN: "e.g. S, M, L, Size 42"},
		Impact:  bilingual.Text{TH: "ช่วยให้รู้ว่าใส่ได้หรือไม่", EN: "Helps determine fit"},
	},
}

func infoForAttribute(attr string) attributeInfo {
	if info, ok := attributeInfos[attr]; ok {
		return info
	}
	return attributeInfo{
		Example: bilingual.Text{TH: "ระบุ " + attr, EN: "Specify " + attr},
		Impact:  bilingual.Text{TH: "ช่วยให้ขายได้เร็วขึ้น", EN: "Helps sell faster"},
	}
}

var buyerHints = map[int]bilingual.Text{
	3: {TH: "ผู้ซื้อมักค้นหา: ยี่ห้อ + รุ่น + ความจุ + สี", EN: "Buyers search: Brand + Model + Storage + Color"},
	4: {TH: "ผู้ซื้อมักค้นหา: ยี่ห้อ + รุ่น + CPU/RAM + สภาพ", EN: "Buyers search: Brand + Model + Specs + Condition"},
	1: {TH: "ผู้ซื้อมักค้นหา: ยี่ห้อ + รุ่น + ปี + เลขไมล์", EN: "Buyers search: Brand + Model + Year + Mileage"},
	6: {TH: "ผู้ซื้อมักค้นหา: แบรนด์ + ชนิดสินค้า + ไซส์ + สภาพ", EN: "Buyers search: Brand + Item + Size + Condition"},
}

func buyerHintForCategory(categoryID int) bilingual.Text {
	if hint, ok := buyerHints[categoryID]; ok {
		return hint
	}
	return bilingual.Text{TH: "ใส่คำค้นที่ผู้ซื้อมักใช้", EN: "Include keywords buyers use"}
}
