package storage

import (
	"encoding/json"

	"github.com/klauspost/compress/zstd"
)

// Move is a direction change applied before the given tick.
type Move struct {
	Tick uint64 `json:"tick"`
	Dir  string `json:"dir"`
}

var (
	moveEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	moveDecoder, _ = zstd.NewReader(nil)
)

// encodeMoves serializes moves as zstd-compressed JSON.
func encodeMoves(moves []Move) ([]byte, error) {
	if moves == nil {
		moves = []Move{}
	}
	raw, err := json.Marshal(moves)
	if err != nil {
		return nil, err
	}
	return moveEncoder.EncodeAll(raw, nil), nil
}

func decodeMoves(data []byte) ([]Move, error) {
	raw, err := moveDecoder.DecodeAll(data, nil)
	if err != nil {
		return nil, err
	}
	var moves []Move
	if err := json.Unmarshal(raw, &moves); err != nil {
		return nil, err
	}
	return moves, nil
}
