package environment

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBucket(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, "night"},
		{4, "night"},
		{5, "morning"},
		{10, "morning"},
		{11, "noon"},
		{12, "noon"},
		{13, "afternoon"},
		{16, "afternoon"},
		{17, "evening"},
		{18, "evening"},
		{19, "night"},
		{23, "night"},
	}

	for _, tt := range tests {
		if got := Bucket(tt.hour); got != tt.want {
			t.Errorf("Bucket(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}

func TestTimeOfDay(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"03/15/2024 08:30", "morning"},
		{"03/15/2024 23:00", "night"},
		{"03/15/2024 12:00", "noon"},
		{"03/15/2024 14:45", "afternoon"},
		{"03/15/2024 17:05", "evening"},
		{"3/5/2024 7:15", "morning"},
		{"2024-03-15 08:30", ""},
		{"13/15/2024 08:30", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := TimeOfDay(tt.input); got != tt.want {
				t.Errorf("TimeOfDay(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		want    Context
		summary string
	}{
		{
			name: "full report",
			doc: `
accident_time: 03/15/2024 08:30
accident_weather:
  weather: Clear
  light: Daylight
  road_surface_condition: Dry
`,
			want:    Context{Weather: "Clear", Lighting: "Daylight", RoadSurface: "Dry", TimeOfDay: "morning"},
			summary: "weather: Clear, lighting: Daylight, road surface: Dry, time of day: morning",
		},
		{
			name: "partial weather",
			doc: `
accident_weather:
  weather: Rain
  light: ""
`,
			want:    Context{Weather: "Rain"},
			summary: "weather: Rain",
		},
		{
			name:    "malformed time keeps weather",
			doc:     "accident_time: yesterday\naccident_weather:\n  light: Dark - Lighted\n",
			want:    Context{Lighting: "Dark - Lighted"},
			summary: "lighting: Dark - Lighted",
		},
		{
			name:    "time only",
			doc:     `accident_time: "03/15/2024 23:00"`,
			want:    Context{TimeOfDay: "night"},
			summary: "time of day: night",
		},
		{
			name:    "non-string time",
			doc:     "accident_time: 1700000000\n",
			want:    Context{},
			summary: "",
		},
		{
			name:    "weather section is a list",
			doc:     "accident_weather:\n  - Clear\n",
			want:    Context{},
			summary: "",
		},
		{
			name:    "numeric condition code",
			doc:     "accident_weather:\n  road_surface_condition: 3\n",
			want:    Context{RoadSurface: "3"},
			summary: "road surface: 3",
		},
		{
			name:    "document is a list",
			doc:     "- a\n- b\n",
			want:    Context{},
			summary: "",
		},
		{
			name:    "invalid yaml",
			doc:     "accident_weather: [unterminated",
			want:    Context{},
			summary: "",
		},
		{
			name:    "empty document",
			doc:     "",
			want:    Context{},
			summary: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse([]byte(tt.doc))
			if got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
			if got.Summary() != tt.summary {
				t.Errorf("Summary() = %q, want %q", got.Summary(), tt.summary)
			}
		})
	}
}

func TestLoad_MissingReport(t *testing.T) {
	fcd := filepath.Join(t.TempDir(), "final.fcd.xml")

	ctx := Load(fcd)
	if !ctx.IsZero() {
		t.Errorf("expected zero context, got %+v", ctx)
	}
	if ctx.Summary() != "" || ctx.TimeOfDay != "" {
		t.Error("expected empty summary and no time of day")
	}
}

func TestLoad_ReportNextToFCD(t *testing.T) {
	dir := t.TempDir()
	report := "accident_time: 03/15/2024 12:00\naccident_weather:\n  weather: Cloudy\n"
	if err := os.WriteFile(filepath.Join(dir, ReportFile), []byte(report), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx := Load(filepath.Join(dir, "final.fcd.xml"))
	want := Context{Weather: "Cloudy", TimeOfDay: "noon"}
	if ctx != want {
		t.Errorf("Load() = %+v, want %+v", ctx, want)
	}
}
