package layout

import "testing"

func TestCursorFirstMoveLands(t *testing.T) {
	var c Cursor
	if _, ok := c.Index(); ok {
		t.Fatal("fresh cursor should be absent")
	}

	c.Move(DirRight, 3, 10)
	if i, ok := c.Index(); !ok || i != 0 {
		t.Errorf("first move should land on 0, got %d/%v", i, ok)
	}
}

func TestCursorRightLeftRoundTrip(t *testing.T) {
	var c Cursor
	c.Select(4, 10)

	c.Move(DirRight, 3, 10)
	c.Move(DirLeft, 3, 10)

	if i, _ := c.Index(); i != 4 {
		t.Errorf("right then left should return to 4, got %d", i)
	}
}

func TestCursorRowMovement(t *testing.T) {
	var c Cursor
	c.Select(1, 10)

	c.Move(DirDown, 3, 10)
	if i, _ := c.Index(); i != 4 {
		t.Errorf("down should add the column count, got %d", i)
	}

	c.Move(DirUp, 3, 10)
	if i, _ := c.Index(); i != 1 {
		t.Errorf("up should subtract the column count, got %d", i)
	}
}

func TestCursorSaturatesAtBoundaries(t *testing.T) {
	var c Cursor
	c.Select(9, 10)

	c.Move(DirRight, 3, 10)
	c.Move(DirRight, 3, 10)
	if i, _ := c.Index(); i != 9 {
		t.Errorf("repeated right at the end should stay at 9, got %d", i)
	}

	c.Move(DirDown, 3, 10)
	if i, _ := c.Index(); i != 9 {
		t.Errorf("down past the end should stay at 9, got %d", i)
	}

	c.Select(0, 10)
	c.Move(DirLeft, 3, 10)
	c.Move(DirUp, 3, 10)
	if i, _ := c.Index(); i != 0 {
		t.Errorf("left/up at the start should stay at 0, got %d", i)
	}
}

func TestCursorDownClampsPartialRow(t *testing.T) {
	var c Cursor
	c.Select(5, 7)

	c.Move(DirDown, 3, 7)
	if i, _ := c.Index(); i != 6 {
		t.Errorf("down into a partial last row should clamp to 6, got %d", i)
	}
}

func TestCursorDisabledIsNoOp(t *testing.T) {
	var c Cursor
	c.Select(3, 10)
	c.SetEnabled(false)

	c.Move(DirRight, 3, 10)
	if i, _ := c.Index(); i != 3 {
		t.Errorf("disabled cursor should not move, got %d", i)
	}

	c.SetEnabled(true)
	c.Move(DirRight, 3, 10)
	if i, _ := c.Index(); i != 4 {
		t.Errorf("re-enabled cursor should move, got %d", i)
	}
}

func TestCursorClampAfterShrink(t *testing.T) {
	var c Cursor
	c.Select(8, 10)

	c.Clamp(5)
	if i, ok := c.Index(); !ok || i != 4 {
		t.Errorf("cursor should clamp to 4 after shrink, got %d/%v", i, ok)
	}

	c.Clamp(0)
	if _, ok := c.Index(); ok {
		t.Error("cursor should be absent when no items remain")
	}
}

func TestCursorEmptySequence(t *testing.T) {
	var c Cursor
	c.Move(DirRight, 3, 0)
	if _, ok := c.Index(); ok {
		t.Error("moving in an empty sequence should leave the cursor absent")
	}
}
