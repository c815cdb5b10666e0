package textutil

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Eficiência", "eficiencia"},
		{"EFICIENCIA", "eficiencia"},
		{"  eficiencia ", "eficiencia"},
		{"Comissão (R$)", "comissao (r$)"},
		{"Mês", "mes"},
		{"", ""},
		{"   ", ""},
		{"já normalizado", "ja normalizado"},
	}

	for _, c := range cases {
		got := Normalize(c.in)
		if got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Eficiência", "Faturamento R$", "Preço Médio", "data", "ação àé îõ ç"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
