package preprocess

import "testing"

func TestKyteaFullwidthRemapsKnownRunes(t *testing.T) {
	got := KyteaFullwidth("abc123(x)")
	want := "ａｂｃ１２３（ｘ）"
	if got != want {
		t.Errorf("KyteaFullwidth = %q, want %q", got, want)
	}
}

func TestKyteaFullwidthPassesThroughUnmappedRunes(t *testing.T) {
	got := KyteaFullwidth("猫は可愛い")
	if got != "猫は可愛い" {
		t.Errorf("KyteaFullwidth changed unmapped text: %q", got)
	}
}

func TestKyteaFullwidthEmptyString(t *testing.T) {
	if got := KyteaFullwidth(""); got != "" {
		t.Errorf("KyteaFullwidth(\"\") = %q, want empty", got)
	}
}
