package cmd

import (
	"errors"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/toyrsa/internal/errors"
)

func TestDemo_AllValuesByFlag(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "", "demo", "--p", "61", "--q", "53", "--m", "65", "--e", "17", "--no-banner")
	if err != nil {
		t.Fatalf("demo failed: %v\noutput: %s", err, output)
	}

	expected := []string{
		"Simple RSA encryption example",
		"modulus n = p * q = 61 * 53 = 3233",
		"phi = (p - 1) * (q - 1) = (61 - 1) * (53 - 1) = 3120",
		"Choose public key e: 17",
		"[*] 17 and 3120 have no common factors except 1",
		"Computed private key d: 2753",
		"[*] 17 * 2753 mod 3120 = 1",
		"Encrypted message c = m ** e % n = 2790",
		"Decrypted message mm = c ** d % n = 65",
		"[*] Is m == mm ? ... OK WORKING EXAMPLE",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestDemo_PromptsAndRetries(t *testing.T) {
	setupTestEnvironment(t)

	stdin := strings.Join([]string{"abc", "4", "61", "61", "53", "5000", "65"}, "\n") + "\n"
	output, err := runCLI(t, stdin, "demo", "--e", "17", "--no-banner")
	if err != nil {
		t.Fatalf("demo failed: %v\noutput: %s", err, output)
	}

	expected := []string{
		"Select prime p: ",
		"Only integers allowed",
		"Not a prime number",
		"Select prime q: ",
		"q must differ from p",
		"Select message m: ",
		"Message needs to be smaller than modulus n",
		"OK WORKING EXAMPLE",
	}
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestDemo_RetriesExhausted(t *testing.T) {
	setupTestEnvironment(t)

	stdin := strings.Repeat("nope\n", 5)
	output, err := runCLI(t, stdin, "demo", "--no-banner")
	if !errors.Is(err, kerrors.ErrRetriesExhausted) {
		t.Fatalf("expected ErrRetriesExhausted, got %v", err)
	}
	if strings.Count(output, "Only integers allowed") != 5 {
		t.Errorf("expected five rejections, got:\n%s", output)
	}
	if !strings.Contains(output, "too many invalid attempts") {
		t.Errorf("expected error message, got:\n%s", output)
	}
}

func TestDemo_EndOfInput(t *testing.T) {
	setupTestEnvironment(t)

	_, err := runCLI(t, "", "demo", "--no-banner")
	if err == nil {
		t.Fatal("expected error when input ends before primes are given")
	}
}

func TestDemo_PrimesMustComeTogether(t *testing.T) {
	setupTestEnvironment(t)

	output, err := runCLI(t, "", "demo", "--p", "61", "--no-banner")
	if !errors.Is(err, kerrors.ErrMissingInput) {
		t.Fatalf("expected ErrMissingInput, got %v", err)
	}
	if !strings.Contains(output, "--p and --q") {
		t.Errorf("expected hint about --p and --q, got:\n%s", output)
	}
}

func TestDemo_InvalidPrimeFlag(t *testing.T) {
	setupTestEnvironment(t)

	_, err := runCLI(t, "", "demo", "--p", "60", "--q", "53", "--m", "1", "--no-banner")
	if !errors.Is(err, kerrors.ErrInvalidPrimes) {
		t.Fatalf("expected ErrInvalidPrimes, got %v", err)
	}
}

func TestDemo_SeedIsReproducible(t *testing.T) {
	setupTestEnvironment(t)

	args := []string{"demo", "--p", "101", "--q", "113", "--m", "42", "--seed", "9", "--no-banner"}
	first, err := runCLI(t, "", args...)
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}
	second, err := runCLI(t, "", args...)
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}
	if first != second {
		t.Errorf("seeded runs differ:\n%s\n---\n%s", first, second)
	}
}

func TestPrintBanner_UnknownFontWarnsWithoutVerbose(t *testing.T) {
	setupTestEnvironment(t)

	output, _ := captureOutput(func() error {
		printBanner("no-such-font")
		return nil
	})
	if !strings.Contains(output, "Skipping banner") || !strings.Contains(output, "banner_font") {
		t.Errorf("expected banner warning, got:\n%s", output)
	}
}

func TestPrintBanner_KnownFont(t *testing.T) {
	setupTestEnvironment(t)

	output, _ := captureOutput(func() error {
		printBanner("standard")
		return nil
	})
	if strings.Contains(output, "Skipping banner") || strings.Count(output, "\n") < 3 {
		t.Errorf("expected ASCII art banner, got:\n%s", output)
	}
}
