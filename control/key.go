package control

var _ Control = (*Key)(nil)

// Key is a virtual keyboard key. It is edge-triggered: key-down on
// acquisition, key-up on release or when the contact drifts out of bounds.
type Key struct {
	base

	Symbol   int
	Modifier int
	Scancode int
	Unicode  int

	onKey func(symbol, modifier, scancode, unicode int, pressed bool)
}

// NewKey creates a key widget emitting on cb.OnKey.
func NewKey(id int, r Rect, symbol, modifier, scancode, unicode int, cb Callbacks) *Key {
	return &Key{
		base:     newBase(id, KindKey, r),
		Symbol:   symbol,
		Modifier: modifier,
		Scancode: scancode,
		Unicode:  unicode,
		onKey:    cb.OnKey,
	}
}

func (k *Key) press(TouchEvent) { k.emit(true) }

func (k *Key) drag(ev TouchEvent) {
	if ev.Type == Release {
		k.emit(false)
	}
}

func (k *Key) lift(TouchEvent) { k.emit(false) }

func (k *Key) emit(pressed bool) {
	if k.onKey != nil {
		k.onKey(k.Symbol, k.Modifier, k.Scancode, k.Unicode, pressed)
	}
}
