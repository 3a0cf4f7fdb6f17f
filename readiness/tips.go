package readiness

import (
	"fmt"
	"sort"

	"github.com/kritsada/taladnat-bot/bilingual"
)

// Priority orders improvement tips from most to least urgent.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

var priorityRank = map[Priority]int{
	PriorityCritical: 0,
	PriorityHigh:     1,
	PriorityMedium:   2,
	PriorityLow:      3,
}

// TipCategory names the scoring dimension a tip addresses.
type TipCategory string

const (
	TipImages         TipCategory = "images"
	TipDetails        TipCategory = "details"
	TipCategoryChoice TipCategory = "category"
	TipTrust          TipCategory = "trust"
	TipShipping       TipCategory = "shipping"
	TipTitle          TipCategory = "title"
	TipPrice          TipCategory = "price"
)

// Tip is a prioritized, actionable suggestion to improve a listing.
// PointsGain is the nominal point budget of the fix, used for sorting,
// not a measured score delta.
type Tip struct {
	Priority   Priority       `json:"priority"`
	Category   TipCategory    `json:"category"`
	Tip        bilingual.Text `json:"tip"`
	Impact     bilingual.Text `json:"impact"`
	PointsGain int            `json:"points_gain"`
}

// Categories where warranty information is worth asking for
// (electronics and appliances).
var warrantyCategories = map[int]bool{3: true, 4: true, 5: true}

const maxTips = 5

// improvementTips emits at most five tips, sorted by priority then by
// points gained. A missing price always produces a critical tip but
// never blocks publishing.
func improvementTips(listing ListingData, scores CategoryScores) []Tip {
	var tips []Tip

	if scores.Images < 20 && len(listing.Images) < 5 {
		tips = append(tips, Tip{
			Priority: PriorityCritical,
			Category: TipImages,
			Tip: bilingual.Text{
				TH: fmt.Sprintf("เพิ่มรูปให้มีอย่างน้อย 5 รูป (ตอนนี้มี %d รูป)", len(listing.Images)),
				EN: fmt.Sprintf("Add at least 5 photos (currently %d)", len(listing.Images)),
			},
			Impact: bilingual.Text{
				TH: "สินค้าที่มี 5-7 รูป ขายได้เร็วกว่า 2 เท่า",
				EN: "Products with 5-7 photos sell 2x faster",
			},
			PointsGain: 10,
		})
	}

	if scores.Details < 15 && runeLen(listing.Description) < 100 {
		tips = append(tips, Tip{
			Priority: PriorityHigh,
			Category: TipDetails,
			Tip: bilingual.Text{
				TH: "เขียนคำอธิบายให้ละเอียดกว่านี้ (อย่างน้อย 100 ตัวอักษร)",
				EN: "Write more detailed description (at least 100 characters)",
			},
			Impact: bilingual.Text{
				TH: "คำอธิบายละเอียดเพิ่มความน่าเชื่อถือ +25%",
				EN: "Detailed description increases trust +25%",
			},
			PointsGain: 8,
		})
	}

	if scores.Category < 10 {
		if listing.CategoryID == CategoryOthers {
			tips = append(tips, Tip{
				Priority: PriorityHigh,
				Category: TipCategoryChoice,
				Tip: bilingual.Text{
					TH: `เลือกหมวดหมู่ที่เหมาะสมแทน "อื่นๆ"`,
					EN: `Select appropriate category instead of "Others"`,
				},
				Impact: bilingual.Text{
					TH: "หมวดหมู่ที่ถูกต้องช่วยให้ผู้ซื้อค้นหาเจอง่าย",
					EN: "Correct category helps buyers find your item",
				},
				PointsGain: 7,
			})
		}
		if listing.SubcategoryID == 0 {
			tips = append(tips, Tip{
				Priority: PriorityMedium,
				Category: TipCategoryChoice,
				Tip: bilingual.Text{
					TH: "เลือกหมวดหมู่ย่อยเพื่อความแม่นยำ",
					EN: "Select subcategory for better accuracy",
				},
				Impact: bilingual.Text{
					TH: "เพิ่มโอกาสปรากฏในผลการค้นหาที่เฉพาะเจาะจง",
					EN: "Increases visibility in specific searches",
				},
				PointsGain: 5,
			})
		}
	}

	if scores.Trust < 10 {
		if listing.Province == "" || listing.Amphoe == "" {
			tips = append(tips, Tip{
				Priority: PriorityMedium,
				Category: TipTrust,
				Tip: bilingual.Text{
					TH: "ระบุที่อยู่ให้ครบถ้วน (จังหวัด, อำเภอ, ตำบล)",
					EN: "Specify complete location (province, district, sub-district)",
				},
				Impact: bilingual.Text{
					TH: "ที่อยู่ชัดเจนเพิ่มความน่าเชื่อถือ +15%",
					EN: "Clear location increases trust +15%",
				},
				PointsGain: 5,
			})
		}
		if !listing.HasWarranty && warrantyCategories[listing.CategoryID] {
			tips = append(tips, Tip{
				Priority: PriorityMedium,
				Category: TipTrust,
				Tip: bilingual.Text{
					TH: "ระบุข้อมูลการรับประกัน (ถ้ามี)",
					EN: "Specify warranty information (if any)",
				},
				Impact: bilingual.Text{
					TH: "การมีประกันเพิ่มความมั่นใจให้ผู้ซื้อ",
					EN: "Warranty increases buyer confidence",
				},
				PointsGain: 3,
			})
		}
	}

	if scores.Shipping < 5 {
		tips = append(tips, Tip{
			Priority: PriorityMedium,
			Category: TipShipping,
			Tip: bilingual.Text{
				TH: "เพิ่มทางเลือกการจัดส่ง",
				EN: "Add shipping options",
			},
			Impact: bilingual.Text{
				TH: "มีทางเลือกให้ผู้ซื้อทำให้ขายได้เร็วขึ้น",
				EN: "Multiple shipping options lead to faster sales",
			},
			PointsGain: 5,
		})
	}

	if scores.Title < 3 {
		tips = append(tips, Tip{
			Priority: PriorityLow,
			Category: TipTitle,
			Tip: bilingual.Text{
				TH: "ใส่รายละเอียดสำคัญในชื่อสินค้า (ยี่ห้อ, รุ่น, สเปก)",
				EN: "Include key details in title (brand, model, specs)",
			},
			Impact: bilingual.Text{
				TH: "ชื่อที่ดีช่วยให้ปรากฏในผลการค้นหา",
				EN: "Good title improves search visibility",
			},
			PointsGain: 3,
		})
	}

	if listing.Price <= 0 {
		tips = append(tips, Tip{
			Priority: PriorityCritical,
			Category: TipPrice,
			Tip: bilingual.Text{
				TH: "กรุณาระบุราคาสินค้า",
				EN: "Please specify product price",
			},
			Impact: bilingual.Text{
				TH: "ราคาเป็นข้อมูลสำคัญที่สุดสำหรับผู้ซื้อ",
				EN: "Price is the most critical information for buyers",
			},
			// Informational: the price is not part of the sell score.
			PointsGain: 0,
		})
	}

	sort.SliceStable(tips, func(i, j int) bool {
		if priorityRank[tips[i].Priority] != priorityRank[tips[j].Priority] {
			return priorityRank[tips[i].Priority] < priorityRank[tips[j].Priority]
		}
		return tips[i].PointsGain > tips[j].PointsGain
	})

	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}
	return tips
}
