package reactive

import "testing"

func TestBindText(t *testing.T) {
	c := NewCell(41)
	node, release := BindText(c)
	defer release()

	if node.Text != "41" {
		t.Errorf("expected initial text %q, got %q", "41", node.Text)
	}

	c.Set(42)
	if node.Text != "42" {
		t.Errorf("expected text %q after set, got %q", "42", node.Text)
	}
}

func TestBindTextRelease(t *testing.T) {
	c := NewCell("a")
	node, release := BindText(c)

	release()
	c.Set("b")

	if node.Text != "a" {
		t.Errorf("released text binding must stop tracking, got %q", node.Text)
	}
}

func TestBindComputedText(t *testing.T) {
	c := NewCell(2)
	double := Map(c, func(n int) int { return n * 2 })

	node, release := BindComputedText(double)
	defer release()

	if node.Text != "4" {
		t.Errorf("expected initial text %q, got %q", "4", node.Text)
	}

	c.Set(5)
	if node.Text != "10" {
		t.Errorf("expected text %q, got %q", "10", node.Text)
	}
}
