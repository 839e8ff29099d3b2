package block

import (
	"fmt"
	"math"
	"os"
)

// Text splits a line-oriented file into blocks of whole lines.
type Text struct{}

func (Text) Split(fileName string, choice, number int) (*Message, error) {
	message, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	totalLines := calculateTotalLines(message)

	var blockSize int
	switch choice {
	case ChoiceFixedBlockSize:
		blockSize = number
	case ChoiceFixedBlockCount:
		blockSize = int(math.Round(float64(totalLines) / float64(number)))
	default:
		return nil, fmt.Errorf("invalid choice: choose %d for fixed block size or %d for fixed number of blocks", ChoiceFixedBlockSize, ChoiceFixedBlockCount)
	}

	blocks := createTextBlocks(message, blockSize)
	return &Message{
		Blocks:         blocks,
		BlockSize:      blockSize,
		NumberOfBlocks: len(blocks),
		Message:        message,
		FileType:       "text",
	}, nil
}

// createTextBlocks groups message into consecutive runs of blockSize lines.
func createTextBlocks(message []byte, blockSize int) [][]byte {
	var blocks [][]byte
	var current []byte
	lineCount := 0

	for _, b := range message {
		current = append(current, b)
		if b == '\n' {
			lineCount++
			if lineCount%blockSize == 0 {
				blocks = append(blocks, current)
				current = nil
			}
		}
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

// calculateTotalLines counts newline-terminated lines, plus one more if the
// message does not end in a newline.
func calculateTotalLines(message []byte) int {
	total := 0
	for _, b := range message {
		if b == '\n' {
			total++
		}
	}
	if len(message) > 0 && message[len(message)-1] != '\n' {
		total++
	}
	return total
}
