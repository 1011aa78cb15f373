package scpi

import "testing"

func TestJoin(t *testing.T) {
	tests := []struct {
		name     string
		segments []string
		want     string
	}{
		{"bare segments", []string{"CHAN1", "BWL"}, ":CHAN1:BWL"},
		{"leading colons", []string{":TRIG", ":EDG"}, ":TRIG:EDG"},
		{"mixed", []string{":CURS:TRAC", "AX"}, ":CURS:TRAC:AX"},
		{"trailing colon", []string{"TIM:", "SCAL"}, ":TIM:SCAL"},
		{"empty segment skipped", []string{"MEAS", "", "SOUR"}, ":MEAS:SOUR"},
		{"single segment", []string{"RUN"}, ":RUN"},
		{"three levels", []string{":TIM", "DEL", "ENAB"}, ":TIM:DEL:ENAB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Join(tt.segments...); got != tt.want {
				t.Errorf("Join(%v) = %q, want %q", tt.segments, got, tt.want)
			}
		})
	}
}

func TestIndexed(t *testing.T) {
	if got := Indexed("CHAN", 1); got != "CHAN1" {
		t.Errorf("Indexed(CHAN, 1) = %q, want CHAN1", got)
	}
	if got := Indexed("REF", 10); got != "REF10" {
		t.Errorf("Indexed(REF, 10) = %q, want REF10", got)
	}
}

func TestIndexedPathHasNoDuplicateSeparators(t *testing.T) {
	// Command path for an indexed subsystem at index k must equal
	// "<subsystem>{k}:<keyword>".
	got := Join(Indexed(":CHAN", 3), ":SCAL")
	if got != ":CHAN3:SCAL" {
		t.Errorf("indexed path = %q, want :CHAN3:SCAL", got)
	}
}

func TestQueryAndSetForms(t *testing.T) {
	path := Join("CHAN1", "DISP")
	if got := Query(path); got != ":CHAN1:DISP?" {
		t.Errorf("Query = %q", got)
	}
	if got := Set(path, "1"); got != ":CHAN1:DISP 1" {
		t.Errorf("Set = %q", got)
	}
}
