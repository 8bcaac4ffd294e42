package validators

import "testing"

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"2", "(2"},
		{"27", "(27"},
		{"2799", "(27) 99"},
		{"27997790000", "(27) 99779-0000"},
		{"(27) 99779-0000", "(27) 99779-0000"},
		{"279977900001234", "(27) 99779-0000"},
	}

	for _, test := range tests {
		if got := FormatPhone(test.input); got != test.expected {
			t.Errorf("FormatPhone(%q) = %q, expected %q", test.input, got, test.expected)
		}
	}
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"27997790000", "(11) 98888-7777", "11 9 8888 7777"}
	for _, phone := range valid {
		if err := ValidatePhone(phone); err != nil {
			t.Errorf("ValidatePhone(%q) = %v, expected nil", phone, err)
		}
	}

	invalid := []string{
		"",
		"2799779000",    // 10 digits
		"279977900001",  // 12 digits
		"09997790000",   // DDD below 11
		"27897790000",   // third digit not 9
	}
	for _, phone := range invalid {
		if err := ValidatePhone(phone); err == nil {
			t.Errorf("ValidatePhone(%q) = nil, expected error", phone)
		}
	}
}

func TestValidateName(t *testing.T) {
	valid := []string{"Ana", "João da Silva", "D'Ávila", "Maria-Clara"}
	for _, name := range valid {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) = %v, expected nil", name, err)
		}
	}

	invalid := []string{"", "  ", "Jo", "Maria123", "Nome@Inválido"}
	for _, name := range invalid {
		if err := ValidateName(name); err == nil {
			t.Errorf("ValidateName(%q) = nil, expected error", name)
		}
	}
}
