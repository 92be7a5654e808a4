package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const reportIDLength = 12

// GenerateReportID gera o identificador devolvido em X-Report-ID e gravado no briefing
func GenerateReportID() (string, error) {
	return gonanoid.Generate(characters, reportIDLength)
}
