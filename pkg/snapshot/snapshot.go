// Package snapshot encodes and decodes a board.Board in the compact binary wire format
// described in spec §6.3: a fixed-layout struct pack, deflate-compressed, base64-encoded.
// It is grounded field-for-field on engine.py's BaseBoard.serialize/deserialize, which use
// Python's struct.pack(">21Q3b12I", ...) over the same 21 bitboards, 3 turn-state bytes, and
// 12 reserve counts laid out here.
package snapshot

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/herohde/ghq/pkg/board"
)

// packedSize is 21 bitboards (8 bytes each) + 3 turn-state bytes + 12 reserve counts (4
// bytes each), matching Python's ">21Q3b12I" struct format exactly.
const packedSize = 21*8 + 3*1 + 12*4

// Encode serialises b into the wire format: deflate-compressed, base64-encoded.
func Encode(b *board.Board) (string, error) {
	r := b.Raw()

	buf := make([]byte, 0, packedSize)
	buf = appendUint64(buf,
		uint64(r.Occupied), uint64(r.Infantry), uint64(r.ArmoredInfantry), uint64(r.AirborneInfantry),
		uint64(r.Artillery), uint64(r.ArmoredArtillery), uint64(r.HeavyArtillery), uint64(r.HQ),
		uint64(r.OccupiedRed), uint64(r.OccupiedBlue),
		uint64(r.BombardedByRed), uint64(r.BombardedByBlue),
		uint64(r.AdjToInfantryRed), uint64(r.AdjToInfantryBlue),
		uint64(r.OrientBit0), uint64(r.OrientBit1), uint64(r.OrientBit2),
		uint64(r.TurnPieces), uint64(r.FreeCaptureMask), uint64(r.FreeCaptureEnemy), uint64(r.FreeCaptureAllow),
	)
	buf = append(buf, byte(r.Turn), int8ToByte(r.TurnMoves), int8ToByte(r.TurnAutoMoves))
	buf = appendUint32From(buf, r.ReserveRed)
	buf = appendUint32From(buf, r.ReserveBlue)

	var compressed bytes.Buffer
	w, err := flate.NewWriter(&compressed, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	if _, err := w.Write(buf); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("snapshot: %w", err)
	}

	return base64.StdEncoding.EncodeToString(compressed.Bytes()), nil
}

// Decode reconstructs a board.Board from a string produced by Encode.
func Decode(data string) (*board.Board, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("snapshot: invalid base64: %w", err)
	}

	r := flate.NewReader(bytes.NewReader(raw))
	defer r.Close()

	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("snapshot: invalid deflate stream: %w", err)
	}
	if len(buf) != packedSize {
		return nil, fmt.Errorf("snapshot: expected %d packed bytes, got %d", packedSize, len(buf))
	}

	var bitboards [21]uint64
	for i := range bitboards {
		bitboards[i] = binary.BigEndian.Uint64(buf[i*8 : i*8+8])
	}
	off := 21 * 8

	turn := board.Side(buf[off])
	turnMoves := int(int8(buf[off+1]))
	turnAutoMoves := int(int8(buf[off+2]))
	off += 3

	var reserveRed, reserveBlue [6]uint32
	for i := range reserveRed {
		reserveRed[i] = binary.BigEndian.Uint32(buf[off : off+4])
		off += 4
	}
	for i := range reserveBlue {
		reserveBlue[i] = binary.BigEndian.Uint32(buf[off : off+4])
		off += 4
	}

	state := board.RawState{
		Occupied:          board.Bitboard(bitboards[0]),
		Infantry:          board.Bitboard(bitboards[1]),
		ArmoredInfantry:   board.Bitboard(bitboards[2]),
		AirborneInfantry:  board.Bitboard(bitboards[3]),
		Artillery:         board.Bitboard(bitboards[4]),
		ArmoredArtillery:  board.Bitboard(bitboards[5]),
		HeavyArtillery:    board.Bitboard(bitboards[6]),
		HQ:                board.Bitboard(bitboards[7]),
		OccupiedRed:       board.Bitboard(bitboards[8]),
		OccupiedBlue:      board.Bitboard(bitboards[9]),
		BombardedByRed:    board.Bitboard(bitboards[10]),
		BombardedByBlue:   board.Bitboard(bitboards[11]),
		AdjToInfantryRed:  board.Bitboard(bitboards[12]),
		AdjToInfantryBlue: board.Bitboard(bitboards[13]),
		OrientBit0:        board.Bitboard(bitboards[14]),
		OrientBit1:        board.Bitboard(bitboards[15]),
		OrientBit2:        board.Bitboard(bitboards[16]),
		TurnPieces:        board.Bitboard(bitboards[17]),
		FreeCaptureMask:   board.Bitboard(bitboards[18]),
		FreeCaptureEnemy:  board.Bitboard(bitboards[19]),
		FreeCaptureAllow:  board.Bitboard(bitboards[20]),
		Turn:              turn,
		TurnMoves:         turnMoves,
		TurnAutoMoves:     turnAutoMoves,
		ReserveRed:        reserveRed,
		ReserveBlue:       reserveBlue,
	}
	return board.FromRaw(state), nil
}

func appendUint64(buf []byte, vs ...uint64) []byte {
	for _, v := range vs {
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], v)
		buf = append(buf, b[:]...)
	}
	return buf
}

func appendUint32From(buf []byte, vs [6]uint32) []byte {
	for _, v := range vs {
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], v)
		buf = append(buf, b[:]...)
	}
	return buf
}

func int8ToByte(v int) byte {
	return byte(int8(v))
}
