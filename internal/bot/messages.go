package bot

// =============================================================================
// General messages
// =============================================================================

const (
	MsgOk            = `โอเค!`
	MsgStartPrompt   = "ส่งรูปสินค้ามาเพื่อเริ่มสร้างประกาศ หรือพิมพ์ /new เพื่อเริ่มจากชื่อสินค้า"
	MsgUnexpectedErr = `เกิดข้อผิดพลาด: %s`
	MsgPhotosRemoved = "ลบรูปทั้งหมดแล้ว"
	MsgNoDraft       = "ยังไม่มีประกาศที่กำลังสร้างอยู่ ส่งรูปสินค้าหรือพิมพ์ /new เพื่อเริ่ม"
	MsgDraftCleared  = "ยกเลิกประกาศแล้ว"
	MsgVersionInfo   = "เวอร์ชัน: %s\nบิลด์: %s"
)

// =============================================================================
// Draft flow messages
// =============================================================================

const (
	MsgAnalyzingPhotos = "กำลังวิเคราะห์รูป..."
	MsgPhotoAnalyzed   = `
		*%s*
		%s

		รูป %d รูป · คุณภาพรูปเฉลี่ย %.0f/100`
	MsgPhotoAdded     = "เพิ่มรูปแล้ว (%d รูป)"
	MsgAskTitle       = "ตั้งชื่อประกาศว่าอะไรดี?"
	MsgAskDescription = "เขียนรายละเอียดสินค้า (สภาพ อายุการใช้งาน อุปกรณ์ที่มี):"
	MsgAskPrice       = "ขายราคาเท่าไหร่? (เช่น 24,500)"
	MsgInvalidPrice   = "ราคาไม่ถูกต้อง พิมพ์เป็นตัวเลข เช่น 24500 หรือ 24,500 บาท"
	MsgAskCategory    = "เลือกหมวดหมู่สินค้า:"
	MsgAskSubcategory = "เลือกหมวดหมู่ย่อย:"
	MsgAskProvince    = "สินค้าอยู่จังหวัดอะไร? (เช่น กรุงเทพมหานคร)"
	MsgAskShipping    = "เลือกช่องทางจัดส่ง (กดได้หลายอัน แล้วกดเสร็จสิ้น):"
	MsgAskCondition   = "สภาพสินค้าเป็นอย่างไร?"
	MsgDraftReady     = `
		ร่างประกาศครบแล้ว 🎉

		/score - ดูคะแนนความพร้อมก่อนลงขาย
		/title - ดูคำแนะนำชื่อประกาศ
		/preview - ดูร่างประกาศ
		/cancel - ยกเลิก`
	MsgDraftPreview = `
		*%s*
		%s

		ราคา: %s บาท
		หมวดหมู่: %s
		จังหวัด: %s
		จัดส่ง: %s
		สภาพ: %s
		รูป: %d รูป`
)

// =============================================================================
// Readiness report messages
// =============================================================================

const (
	MsgScoreNoDraft = "ยังไม่มีร่างประกาศให้ประเมิน ส่งรูปสินค้าหรือพิมพ์ /new ก่อน"
	MsgHistoryEmpty = "ยังไม่เคยประเมินประกาศ"
)

// =============================================================================
// Title suggestion messages
// =============================================================================

const (
	MsgTitleNoDraft = "ยังไม่มีชื่อประกาศให้วิเคราะห์ เริ่มสร้างประกาศก่อนด้วย /new หรือส่งรูปสินค้า"
)

// =============================================================================
// Car price messages
// =============================================================================

const (
	MsgCarPriceUsage = `
		วิธีใช้: /carprice <ราคารถใหม่> <ปีรถ> [เลขไมล์] [สภาพ]

		เช่น /carprice 800000 2021 45000 good
		สภาพ: new, like_new, good, fair, poor`
	MsgCarPriceInvalid = "ข้อมูลไม่ถูกต้อง: %s"
	MsgCarPriceResult  = `
		ราคาประเมิน: *%s บาท*
		ช่วงราคาแนะนำ: %s - %s บาท
		อายุรถ: %d ปี`
	MsgCarPriceMarket = "ราคากลางในตลาดตอนนี้ (จาก %d ประกาศ): %s บาท"
)

// =============================================================================
// Admin messages
// =============================================================================

const (
	MsgAdminUsage = `
		วิธีใช้:
		/admin users add <id> - เพิ่มผู้ใช้
		/admin users remove <id> - ลบผู้ใช้
		/admin users list - ดูรายชื่อผู้ใช้`
	MsgAdminUserAdded     = "เพิ่มผู้ใช้ %d แล้ว"
	MsgAdminUserRemoved   = "ลบผู้ใช้ %d แล้ว"
	MsgAdminUserInvalidID = "รหัสผู้ใช้ไม่ถูกต้อง"
	MsgAdminNoUsers       = "ยังไม่มีผู้ใช้ในรายชื่อ"
	MsgAdminAllowedUsers  = "ผู้ใช้ที่อนุญาต:\n"
)

// =============================================================================
// Button labels
// =============================================================================

const BtnShippingDone = "เสร็จสิ้น ✅"

// conditionLabels maps condition codes to Thai labels for keyboards and previews.
var conditionLabels = map[string]string{
	"new":      "ใหม่",
	"like_new": "เหมือนใหม่",
	"good":     "สภาพดี",
	"fair":     "พอใช้",
	"poor":     "ตามสภาพ",
}

// shippingCarriers are the carriers offered in the shipping keyboard.
var shippingCarriers = []string{"kerry", "flash", "thaipost", "j&t"}
