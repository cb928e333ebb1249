package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const taskIDLength = 10

// GenerateID gera um identificador curto para rastrear tarefas nos logs
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, taskIDLength)
}

// MustGenerateID é como GenerateID mas retorna "unknown" em caso de falha
func MustGenerateID() string {
	id, err := GenerateID()
	if err != nil {
		return "unknown"
	}
	return id
}
