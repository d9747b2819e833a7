package appium

import (
	"context"
)

// HideKeyboardStrategy selects how the keyboard is dismissed on iOS.
type HideKeyboardStrategy string

const (
	HideKeyboardPress      HideKeyboardStrategy = "press"
	HideKeyboardPressKey   HideKeyboardStrategy = "pressKey"
	HideKeyboardSwipeDown  HideKeyboardStrategy = "swipeDown"
	HideKeyboardTapOut     HideKeyboardStrategy = "tapOut"
	HideKeyboardTapOutside HideKeyboardStrategy = "tapOutside"
	HideKeyboardDefault    HideKeyboardStrategy = "default"
)

// Meta state bits (android.view.KeyEvent.META_*).
const (
	MetaShiftOn      uint32 = 0x1
	MetaAltOn        uint32 = 0x02
	MetaSymOn        uint32 = 0x4
	MetaFunctionOn   uint32 = 0x8
	MetaAltLeftOn    uint32 = 0x10
	MetaAltRightOn   uint32 = 0x20
	MetaShiftLeftOn  uint32 = 0x40
	MetaShiftRightOn uint32 = 0x80
	MetaCapLocked    uint32 = 0x100
	MetaAltLocked    uint32 = 0x200
	MetaSymLocked    uint32 = 0x400
	MetaSelecting    uint32 = 0x800
	MetaCtrlOn       uint32 = 0x1000
	MetaCtrlLeftOn   uint32 = 0x2000
	MetaCtrlRightOn  uint32 = 0x4000
	MetaMetaOn       uint32 = 0x10000
	MetaMetaLeftOn   uint32 = 0x20000
	MetaMetaRightOn  uint32 = 0x40000
	MetaCapsLockOn   uint32 = 0x100000
	MetaNumLockOn    uint32 = 0x200000
	MetaScrollLockOn uint32 = 0x400000
)

// Key event flags (android.view.KeyEvent.FLAG_*).
const (
	FlagSoftKeyboard      uint32 = 0x2
	FlagKeepTouchMode     uint32 = 0x4
	FlagFromSystem        uint32 = 0x8
	FlagEditorAction      uint32 = 0x10
	FlagCanceled          uint32 = 0x20
	FlagVirtualHardKey    uint32 = 0x40
	FlagLongPress         uint32 = 0x80
	FlagCanceledLongPress uint32 = 0x100
	FlagTracking          uint32 = 0x200
	FlagFallback          uint32 = 0x400
	FlagPredispatch       uint32 = 0x20000000
	FlagStartTracking     uint32 = 0x40000000
	FlagTainted           uint32 = 0x80000000
)

// KeyEvent is an Android key press.
type KeyEvent struct {
	KeyCode   AndroidKey `json:"keycode"`
	MetaState uint32     `json:"metastate"`
	Flags     uint32     `json:"flags"`
}

// NewKeyEvent creates a key event without modifiers.
func NewKeyEvent(key AndroidKey) KeyEvent {
	return KeyEvent{KeyCode: key}
}

// WithMeta returns the event with the meta state bits added.
func (k KeyEvent) WithMeta(meta uint32) KeyEvent {
	k.MetaState |= meta
	return k
}

// WithoutMeta returns the event with the meta state bits cleared.
func (k KeyEvent) WithoutMeta(meta uint32) KeyEvent {
	k.MetaState &^= meta
	return k
}

// WithFlag returns the event with the flag bits added.
func (k KeyEvent) WithFlag(flag uint32) KeyEvent {
	k.Flags |= flag
	return k
}

// WithoutFlag returns the event with the flag bits cleared.
func (k KeyEvent) WithoutFlag(flag uint32) KeyEvent {
	k.Flags &^= flag
	return k
}

// HideKeyboard hides the on-screen keyboard.
func (c *Client) HideKeyboard(ctx context.Context) error {
	_, err := c.post(ctx, "appium/device/hide_keyboard", nil)
	return err
}

// HideKeyboardWithKey hides the keyboard by pressing the named key (iOS).
func (c *Client) HideKeyboardWithKey(ctx context.Context, keyName string) error {
	_, err := c.post(ctx, "appium/device/hide_keyboard", map[string]interface{}{
		"keyName": keyName,
	})
	return err
}

// HideKeyboardWithStrategy hides the keyboard using strategy and key name (iOS).
func (c *Client) HideKeyboardWithStrategy(ctx context.Context, strategy HideKeyboardStrategy, keyName string) error {
	_, err := c.post(ctx, "appium/device/hide_keyboard", map[string]interface{}{
		"keyName":  keyName,
		"strategy": strategy,
	})
	return err
}

// IsKeyboardShown reports whether the soft keyboard is visible.
func (c *Client) IsKeyboardShown(ctx context.Context) (bool, error) {
	return decode[bool](c.get(ctx, "appium/device/is_keyboard_shown"))
}

// PressKey presses a key (Android).
func (c *Client) PressKey(ctx context.Context, event KeyEvent) error {
	_, err := c.post(ctx, "appium/device/press_keycode", event)
	return err
}

// LongPressKey long-presses a key (Android).
func (c *Client) LongPressKey(ctx context.Context, event KeyEvent) error {
	_, err := c.post(ctx, "appium/device/long_press_keycode", event)
	return err
}

// Back presses the back button.
func (c *Client) Back(ctx context.Context) error {
	return c.PressKey(ctx, NewKeyEvent(KeyBack))
}
