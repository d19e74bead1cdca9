package palette

import (
	"encoding/json"
	"testing"

	"wasteland/pkg/engine/debug"
)

func TestFromName(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"red", Red},
		{"c_light_red", LightRed},
		{"LIGHT_GRAY", LightGray},
		{"ltgreen", LightGreen},
		{"pink", Pink},
		{" c_yellow ", Yellow},
	}
	for _, tt := range tests {
		got, ok := FromName(tt.in)
		if !ok || got != tt.want {
			t.Errorf("FromName(%q) = %v, %v, want %v, true", tt.in, got, ok, tt.want)
		}
	}
	if _, ok := FromName("mauve"); ok {
		t.Error("FromName(mauve) ok = true, want false")
	}
}

func TestColor_JSON(t *testing.T) {
	var c Color
	if err := json.Unmarshal([]byte(`"c_cyan"`), &c); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if c != Cyan {
		t.Errorf("Unmarshal(c_cyan) = %v, want Cyan", c)
	}
	b, _ := json.Marshal(c)
	if string(b) != `"cyan"` {
		t.Errorf("Marshal(Cyan) = %s, want \"cyan\"", b)
	}

	stop := debug.Capture()
	err := json.Unmarshal([]byte(`"mauve"`), &c)
	msgs := stop()
	if err != nil || c != LightGray || len(msgs) != 1 {
		t.Errorf("Unmarshal(mauve) = %v, err %v, %d diagnostics; want LightGray, nil, 1", c, err, len(msgs))
	}
}
