package telegram

import "testing"

func TestKeyboardBuilderRows(t *testing.T) {
	kb := NewKeyboard().
		Button("A", "a").Button("B", "b").Row().
		Button("C", "c").Row().
		Build()

	if len(kb.InlineKeyboard) != 2 {
		t.Fatalf("got %d rows, want 2", len(kb.InlineKeyboard))
	}
	if len(kb.InlineKeyboard[0]) != 2 || len(kb.InlineKeyboard[1]) != 1 {
		t.Errorf("unexpected row sizes: %d, %d", len(kb.InlineKeyboard[0]), len(kb.InlineKeyboard[1]))
	}
	if kb.InlineKeyboard[0][0].Text != "A" || *kb.InlineKeyboard[0][0].CallbackData != "a" {
		t.Errorf("unexpected first button: %+v", kb.InlineKeyboard[0][0])
	}
}

func TestKeyboardBuilderColumns(t *testing.T) {
	kb := NewKeyboard().
		Button("1", "1").Button("2", "2").Button("3", "3").Button("4", "4").Button("5", "5").
		Columns(2).
		Build()

	wantRows := []int{2, 2, 1}
	if len(kb.InlineKeyboard) != len(wantRows) {
		t.Fatalf("got %d rows, want %d", len(kb.InlineKeyboard), len(wantRows))
	}
	for i, n := range wantRows {
		if len(kb.InlineKeyboard[i]) != n {
			t.Errorf("row %d has %d buttons, want %d", i, len(kb.InlineKeyboard[i]), n)
		}
	}
}

func TestKeyboardBuilderPendingRowFlushedOnBuild(t *testing.T) {
	kb := NewKeyboard().Button("A", "a").Build()
	if len(kb.InlineKeyboard) != 1 {
		t.Fatalf("got %d rows, want 1", len(kb.InlineKeyboard))
	}
}

func TestKeyboardBuilderEmpty(t *testing.T) {
	kb := NewKeyboard().Build()
	if len(kb.InlineKeyboard) != 0 {
		t.Errorf("got %d rows, want 0", len(kb.InlineKeyboard))
	}
}
