package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/saylorsolutions/xor1/cmd/internal"
	"github.com/saylorsolutions/xor1/pkg/xor"
)

const (
	outputPerm  = 0644
	keyFilePerm = 0600
)

func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return data, nil
}

func encodeFile(log internal.Logger, key xor.Key, input, output string, force bool) error {
	data, err := readInput(input)
	if err != nil {
		return err
	}
	result := xor.Encode(data, key)
	if err := internal.WriteFile(output, result, outputPerm, force); err != nil {
		return err
	}
	log.Printf("Success: encoded %d bytes -> %d bytes", len(data), len(result))
	return nil
}

func decodeFile(log internal.Logger, key xor.Key, input, output string, force bool) error {
	data, err := readInput(input)
	if err != nil {
		return err
	}
	result, err := xor.Decode(data, key)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", input, err)
	}
	if err := internal.WriteFile(output, result, outputPerm, force); err != nil {
		return err
	}
	log.Printf("Success: decoded %d bytes -> %d bytes", len(data), len(result))
	return nil
}

func showFile(log internal.Logger, key xor.Key, input string, limit int) error {
	data, err := readInput(input)
	if err != nil {
		return err
	}
	plain, err := xor.Decode(data, key)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", input, err)
	}
	if len(plain) == 0 {
		log.Warnf("Decoded file is empty: %s", input)
		return nil
	}
	log.Infof("Decoded file: %s (%d bytes)", input, len(plain))
	text, shown := preview(plain, limit)
	_, _ = fmt.Fprintln(log.Out, text)
	if shown < len(plain) {
		log.Infof("... (showing %d of %d bytes)", shown, len(plain))
	}
	return nil
}

// preview renders up to limit bytes of data as a single printable line.
func preview(data []byte, limit int) (string, int) {
	if limit > 0 && len(data) > limit {
		data = data[:limit]
	}
	var sb strings.Builder
	for _, b := range data {
		switch {
		case b == '\n':
			sb.WriteString(`\n`)
		case b == '\t':
			sb.WriteByte(' ')
		case b < 32 || b > 126:
			sb.WriteByte('.')
		default:
			sb.WriteByte(b)
		}
	}
	return sb.String(), len(data)
}

func generateKeyFile(log internal.Logger, output string, force bool) error {
	key, err := xor.GenKey()
	if err != nil {
		return fmt.Errorf("generating key: %w", err)
	}
	if err := internal.WriteFile(output, key[:], keyFilePerm, force); err != nil {
		return err
	}
	log.Printf("Success: wrote %d byte key to %s", len(key), output)
	return nil
}
