package block

import (
	"bufio"
	"bytes"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Image splits a PGM (plain, P2) greyscale image into rectangular tiles.
type Image struct{}

func (Image) Split(fileName string, choice, number int) (*Message, error) {
	pixels, message, err := readPGM(fileName)
	if err != nil {
		return nil, err
	}

	rows := len(pixels)
	columns := len(pixels[0])

	var blockSize int
	switch choice {
	case ChoiceFixedBlockSize:
		if number > rows || number > columns {
			blockSize = maxInt(rows, columns)
		} else {
			blockSize = number
		}
	case ChoiceFixedBlockCount:
		if number > rows*columns {
			blockSize = 1
		} else {
			square := float64(rows*columns) / float64(number)
			side := math.Sqrt(square)
			if side >= math.Floor(side)+0.5 {
				blockSize = int(math.Ceil(side))
			} else {
				blockSize = int(math.Floor(side))
			}
		}
	default:
		return nil, fmt.Errorf("invalid choice: choose %d for fixed block size or %d for fixed number of blocks", ChoiceFixedBlockSize, ChoiceFixedBlockCount)
	}

	blocks := createImageBlocks(pixels, blockSize)
	return &Message{
		Blocks:         blocks,
		BlockSize:      blockSize,
		NumberOfBlocks: len(blocks),
		Message:        message,
		FileType:       "image",
	}, nil
}

// createImageBlocks tiles pixels into blockSize x blockSize rectangles,
// in row-major order, truncating the final row/column of tiles at the
// image boundary.
func createImageBlocks(pixels [][]byte, blockSize int) [][]byte {
	var blocks [][]byte
	rows := len(pixels)
	columns := len(pixels[0])

	blockRows := (rows + blockSize - 1) / blockSize
	blockColumns := (columns + blockSize - 1) / blockSize

	for i := 0; i < blockRows; i++ {
		for j := 0; j < blockColumns; j++ {
			startRow := i * blockSize
			endRow := minInt(startRow+blockSize, rows)
			startColumn := j * blockSize
			endColumn := minInt(startColumn+blockSize, columns)

			block := make([]byte, 0, (endRow-startRow)*(endColumn-startColumn))
			for row := startRow; row < endRow; row++ {
				block = append(block, pixels[row][startColumn:endColumn]...)
			}
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// readPGM parses a plain (ASCII, "P2") PGM file: magic number, one comment
// line, dimensions, max value, then row-major whitespace-separated pixel
// intensities.
func readPGM(fileName string) ([][]byte, []byte, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, nil, err
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	readLine := func() (string, error) {
		if !scanner.Scan() {
			return "", fmt.Errorf("unexpected end of PGM file")
		}
		return scanner.Text(), nil
	}

	if _, err := readLine(); err != nil { // magic number
		return nil, nil, err
	}
	if _, err := readLine(); err != nil { // comment line
		return nil, nil, err
	}
	dimLine, err := readLine()
	if err != nil {
		return nil, nil, err
	}
	dims := strings.Fields(dimLine)
	if len(dims) < 2 {
		return nil, nil, fmt.Errorf("malformed PGM dimensions line: %q", dimLine)
	}
	columns, err := strconv.Atoi(dims[0])
	if err != nil {
		return nil, nil, err
	}
	rows, err := strconv.Atoi(dims[1])
	if err != nil {
		return nil, nil, err
	}
	if _, err := readLine(); err != nil { // max value
		return nil, nil, err
	}

	pixels := make([][]byte, rows)
	for i := range pixels {
		pixels[i] = make([]byte, columns)
	}

	var message bytes.Buffer
	row, col := 0, 0
	for scanner.Scan() {
		for _, tok := range strings.Fields(scanner.Text()) {
			value, err := strconv.Atoi(tok)
			if err != nil {
				return nil, nil, err
			}
			pixels[row][col] = byte(value)
			message.WriteByte(byte(value))
			col++
			if col == columns {
				col = 0
				row++
			}
		}
	}

	return pixels, message.Bytes(), nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
