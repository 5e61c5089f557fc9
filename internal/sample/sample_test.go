package sample

import "testing"

func TestParseFilename(t *testing.T) {
	tests := []struct {
		name string
		want FileName
	}{
		{"exp_007_Tg_AD_cortex_microglia3.1.xls", FileName{"007", "Tg_AD", "3", V1}},
		{"exp_008_NI_hippo_microglia1.3.xls", FileName{"008", "NI", "1", V3}},
		{"x_123_NI_AD_microglia12_2.1.xls", FileName{"123", "NI_AD", "12_2", V1}},
		{"x_045_Tg_left_microglia4.xls", FileName{"045", "Tg", "4", ""}},
		{"x_046_AD_microglia5.7.xls", FileName{"046", "AD", "5", "7"}},
		{"x_047_NI_microglia2.3.xlsx", FileName{"047", "NI", "2", V3}},
		{"exp_008_NI_microglia1.3.csv", FileName{"008", "NI", "1", V3}},
		{"exp_009_Tg_microglia7_1.1.tsv", FileName{"009", "Tg", "7_1", V1}},
	}
	for _, tt := range tests {
		got, ok := ParseFilename(tt.name)
		if !ok {
			t.Fatalf("ParseFilename(%q): expected match", tt.name)
		}
		if got != tt.want {
			t.Errorf("ParseFilename(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
		if got.SampleNumber == "" || got.GroupToken == "" || got.SubObjectID == "" {
			t.Errorf("ParseFilename(%q): empty identity field in %+v", tt.name, got)
		}
	}
}

func TestParseFilenameMiss(t *testing.T) {
	for _, name := range []string{
		"",
		"notes.txt",
		"exp_07_Tg_microglia1.1.xls",
		"exp_007_XX_microglia1.1.xls",
		"exp_007_Tg_astrocyte1.1.xls",
		"exp_007_Tg_microglia1.1",
	} {
		got, ok := ParseFilename(name)
		if ok {
			t.Errorf("ParseFilename(%q): unexpected match %+v", name, got)
		}
		if got != (FileName{}) {
			t.Errorf("ParseFilename(%q): expected zero value, got %+v", name, got)
		}
	}
}

func TestFileNameKeyAndVersion(t *testing.T) {
	fn, ok := ParseFilename("run_007_Tg_AD_x_microglia3.1.xls")
	if !ok {
		t.Fatal("expected match")
	}
	if fn.Key() != "Tg_AD_007_3" {
		t.Fatalf("Key() = %q", fn.Key())
	}
	if fn.Group() != TgAD {
		t.Fatalf("Group() = %v", fn.Group())
	}
	if !fn.Version.Recognized() {
		t.Fatalf("version %q should be recognized", fn.Version)
	}
	if Version("2").Recognized() || Version("").Recognized() {
		t.Fatal("only 1 and 3 are recognized")
	}
}

func TestClassifyGroup(t *testing.T) {
	tests := []struct {
		in   string
		want Group
	}{
		{"X_Tg_AD_Y", TgAD},
		{"X_Tg_Y", Tg},
		{"X_NI_AD_Y", NIAD},
		{"NI_008_1", NI},
		{"no_token", Unknown},
		{"AD_012_1", Unknown},
		{"", Unknown},
	}
	for _, tt := range tests {
		if got := ClassifyGroup(tt.in); got != tt.want {
			t.Errorf("ClassifyGroup(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if Unknown.String() != "Unknown Group" {
		t.Fatalf("sentinel = %q", Unknown.String())
	}
}

func TestDisplayLabel(t *testing.T) {
	tests := map[string]string{
		"Tg_AD_007_3":  "007",
		"NI_008_1":     "008",
		"Mean NI":      "Mean NI",
		"Significance": "Significance",
	}
	for in, want := range tests {
		if got := DisplayLabel(in); got != want {
			t.Errorf("DisplayLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
