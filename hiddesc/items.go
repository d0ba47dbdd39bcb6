package hiddesc

// Usage pages and usages per the HID Usage Tables.
const (
	UsagePageGenericDesktop uint16 = 0x01
	UsagePageButton         uint16 = 0x09
)

const (
	UsageGamePad uint16 = 0x05
	UsageX       uint16 = 0x30
	UsageY       uint16 = 0x31
	UsageZ       uint16 = 0x32
	UsageRx      uint16 = 0x33
	UsageRy      uint16 = 0x34
	UsageRz      uint16 = 0x35
)

// CollectionKind values.
type CollectionKind uint8

const (
	CollectionPhysical    CollectionKind = 0x00
	CollectionApplication CollectionKind = 0x01
)

// MainFlags for Input items.
type MainFlags uint8

const (
	MainData  MainFlags = 0x00
	MainConst MainFlags = 0x01
	MainArray MainFlags = 0x00
	MainVar   MainFlags = 0x02
	MainAbs   MainFlags = 0x00
	MainRel   MainFlags = 0x04
)

// UsagePage sets the current usage page (Global, tag 0x0).
type UsagePage struct{ Page uint16 }

func (u UsagePage) encode(e *encoder) error {
	return e.short(0x0, ItemTypeGlobal, dataU32(uint32(u.Page)))
}

// Usage sets the current usage (Local, tag 0x0).
type Usage struct{ Usage uint16 }

func (u Usage) encode(e *encoder) error {
	return e.short(0x0, ItemTypeLocal, dataU32(uint32(u.Usage)))
}

// Collection begins a collection (Main, tag 0xA) and implicitly emits the
// matching End Collection.
type Collection struct {
	Kind  CollectionKind
	Items []Item
}

func (c Collection) encode(e *encoder) error {
	if err := e.short(0xA, ItemTypeMain, []byte{uint8(c.Kind)}); err != nil {
		return err
	}
	for _, it := range c.Items {
		if err := it.encode(e); err != nil {
			return err
		}
	}
	return e.short(0xC, ItemTypeMain, nil)
}

// ReportID sets the report identifier (Global, tag 0x8).
type ReportID struct{ ID uint8 }

func (r ReportID) encode(e *encoder) error {
	return e.short(0x8, ItemTypeGlobal, []byte{r.ID})
}

// UsageMinimum sets the usage minimum (Local, tag 0x1).
type UsageMinimum struct{ Min uint16 }

func (u UsageMinimum) encode(e *encoder) error {
	return e.short(0x1, ItemTypeLocal, dataU32(uint32(u.Min)))
}

// UsageMaximum sets the usage maximum (Local, tag 0x2).
type UsageMaximum struct{ Max uint16 }

func (u UsageMaximum) encode(e *encoder) error {
	return e.short(0x2, ItemTypeLocal, dataU32(uint32(u.Max)))
}

// LogicalMinimum sets the logical minimum (Global, tag 0x1).
type LogicalMinimum struct{ Min int32 }

func (l LogicalMinimum) encode(e *encoder) error {
	return e.short(0x1, ItemTypeGlobal, dataI32(l.Min))
}

// LogicalMaximum sets the logical maximum (Global, tag 0x2).
type LogicalMaximum struct{ Max int32 }

func (l LogicalMaximum) encode(e *encoder) error {
	return e.short(0x2, ItemTypeGlobal, dataI32(l.Max))
}

// ReportSize sets the field size in bits (Global, tag 0x7).
type ReportSize struct{ Bits uint8 }

func (r ReportSize) encode(e *encoder) error {
	return e.short(0x7, ItemTypeGlobal, []byte{r.Bits})
}

// ReportCount sets the number of fields (Global, tag 0x9).
type ReportCount struct{ Count uint16 }

func (r ReportCount) encode(e *encoder) error {
	return e.short(0x9, ItemTypeGlobal, dataU32(uint32(r.Count)))
}

// Input emits an Input main item (tag 0x8).
type Input struct{ Flags MainFlags }

func (i Input) encode(e *encoder) error {
	return e.short(0x8, ItemTypeMain, []byte{uint8(i.Flags)})
}
