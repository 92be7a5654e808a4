// Package sse decodifica o stream de server-sent events no formato de deltas
// compatível com OpenAI (choices[0].delta.content).
package sse

import (
	"bytes"
	"errors"
	"io"
	"iter"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	dataPrefix = "data: "
	doneMarker = "[DONE]"

	readChunkSize = 4096
)

type deltaChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// Decoder acumula bytes do stream e extrai o texto das linhas "data:" completas.
// Linhas cujo JSON ainda não pode ser lido voltam para o início do buffer
// e aguardam os próximos bytes.
type Decoder struct {
	buf  []byte
	text strings.Builder
	done bool
}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// Feed adiciona um pedaço do stream e retorna os deltas de texto que ficaram completos
func (d *Decoder) Feed(p []byte) []string {
	if d.done {
		return nil
	}
	d.buf = append(d.buf, p...)

	var deltas []string
	for !d.done {
		idx := bytes.IndexByte(d.buf, '\n')
		if idx < 0 {
			break
		}

		line := d.buf[:idx]
		content, ok := d.parseLine(line)
		if !ok {
			break
		}
		d.buf = d.buf[idx+1:]

		if content != "" {
			d.text.WriteString(content)
			deltas = append(deltas, content)
		}
	}

	if d.done {
		d.buf = nil
	}

	return deltas
}

// Flush processa o que sobrou no buffer quando o stream termina.
// Linhas que ainda não formam um JSON válido são descartadas.
func (d *Decoder) Flush() []string {
	if d.done || len(d.buf) == 0 {
		d.buf = nil
		return nil
	}

	remaining := d.buf
	d.buf = nil

	var deltas []string
	for _, line := range bytes.Split(remaining, []byte{'\n'}) {
		content, ok := d.parseLine(line)
		if !ok {
			continue
		}
		if d.done {
			break
		}
		if content != "" {
			d.text.WriteString(content)
			deltas = append(deltas, content)
		}
	}

	return deltas
}

// Done indica se o marcador [DONE] foi recebido
func (d *Decoder) Done() bool {
	return d.done
}

// Text retorna todo o texto acumulado até agora
func (d *Decoder) Text() string {
	return d.text.String()
}

// parseLine retorna ok=false apenas quando a linha é um "data:" com JSON incompleto
func (d *Decoder) parseLine(line []byte) (string, bool) {
	line = bytes.TrimSuffix(line, []byte{'\r'})
	if len(line) == 0 || line[0] == ':' {
		return "", true
	}
	if !bytes.HasPrefix(line, []byte(dataPrefix)) {
		return "", true
	}

	payload := bytes.TrimSpace(line[len(dataPrefix):])
	if string(payload) == doneMarker {
		d.done = true
		return "", true
	}

	var chunk deltaChunk
	if err := json.Unmarshal(payload, &chunk); err != nil {
		return "", false
	}
	if len(chunk.Choices) == 0 {
		return "", true
	}

	return chunk.Choices[0].Delta.Content, true
}

// Deltas lê o stream até [DONE] ou EOF, entregando cada delta na ordem de chegada.
// A sequência consome o reader e não pode ser reiniciada.
func Deltas(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		decoder := NewDecoder()
		chunk := make([]byte, readChunkSize)

		for {
			n, err := r.Read(chunk)
			if n > 0 {
				for _, delta := range decoder.Feed(chunk[:n]) {
					if !yield(delta, nil) {
						return
					}
				}
				if decoder.Done() {
					return
				}
			}

			if errors.Is(err, io.EOF) {
				for _, delta := range decoder.Flush() {
					if !yield(delta, nil) {
						return
					}
				}
				return
			}
			if err != nil {
				yield("", err)
				return
			}
		}
	}
}

// ReadAll consome o stream inteiro e retorna o texto montado
func ReadAll(r io.Reader) (string, error) {
	var sb strings.Builder
	for delta, err := range Deltas(r) {
		if err != nil {
			return sb.String(), err
		}
		sb.WriteString(delta)
	}
	return sb.String(), nil
}
