package core

import "testing"

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionJump)
	f.Type('h', 'i')
	f.Click(3, 4)

	c := f.Clone()
	f.Clear()

	if !f.Empty() {
		t.Error("cleared frame should be empty")
	}
	if !c.Has(ActionJump) || string(c.Text) != "hi" || len(c.Clicks) != 1 || c.Clicks[0] != (Point{3, 4}) {
		t.Errorf("clone lost data: %+v", c)
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionConfirm) {
		t.Error("zero frame has no actions")
	}
	f.Set(ActionConfirm)
	if !f.Has(ActionConfirm) {
		t.Error("Set on zero frame should work")
	}
}
