package board

// RawState is the flat, field-for-field dump of a Board's internal representation, used only
// by pkg/snapshot for binary (de)serialisation. It exposes every bitplane individually because
// the wire format (spec §6.3) mirrors engine.py's BaseBoard.serialize/deserialize struct-pack
// layout exactly, rather than the semantic Placement view pkg/notation works with.
type RawState struct {
	Occupied          Bitboard
	Infantry          Bitboard
	ArmoredInfantry   Bitboard
	AirborneInfantry  Bitboard
	Artillery         Bitboard
	ArmoredArtillery  Bitboard
	HeavyArtillery    Bitboard
	HQ                Bitboard
	OccupiedRed       Bitboard
	OccupiedBlue      Bitboard
	BombardedByRed    Bitboard
	BombardedByBlue   Bitboard
	AdjToInfantryRed  Bitboard
	AdjToInfantryBlue Bitboard
	OrientBit0        Bitboard
	OrientBit1        Bitboard
	OrientBit2        Bitboard
	TurnPieces        Bitboard
	FreeCaptureMask   Bitboard
	FreeCaptureEnemy  Bitboard
	FreeCaptureAllow  Bitboard

	Turn          Side
	TurnMoves     int
	TurnAutoMoves int

	ReserveRed  [6]uint32
	ReserveBlue [6]uint32
}

// Raw returns the flat field dump of b, per RawState.
func (b *Board) Raw() RawState {
	return RawState{
		Occupied:          b.Occupied(),
		Infantry:          b.pieces[Infantry],
		ArmoredInfantry:   b.pieces[ArmoredInfantry],
		AirborneInfantry:  b.pieces[AirborneInfantry],
		Artillery:         b.pieces[Artillery],
		ArmoredArtillery:  b.pieces[ArmoredArtillery],
		HeavyArtillery:    b.pieces[HeavyArtillery],
		HQ:                b.pieces[HQ],
		OccupiedRed:       b.occupiedBy[Red],
		OccupiedBlue:      b.occupiedBy[Blue],
		BombardedByRed:    b.bombardedBy[Red],
		BombardedByBlue:   b.bombardedBy[Blue],
		AdjToInfantryRed:  b.adjToInfantry[Red],
		AdjToInfantryBlue: b.adjToInfantry[Blue],
		OrientBit0:        b.orient0,
		OrientBit1:        b.orient1,
		OrientBit2:        b.orient2,
		TurnPieces:        b.turnPieces,
		FreeCaptureMask:   b.freeCapture.Clusters,
		FreeCaptureEnemy:  b.freeCapture.Enemies,
		FreeCaptureAllow:  b.freeCapture.Allowance,
		Turn:              b.turn,
		TurnMoves:         b.turnMoves,
		TurnAutoMoves:     b.turnAutoMoves,
		ReserveRed:        b.reserves[Red].ToInts(),
		ReserveBlue:       b.reserves[Blue].ToInts(),
	}
}

// FromRaw reconstructs a Board from a RawState produced by Raw. The move history and draw-
// offer state are not part of the wire format (engine.py's deserialize resets them too) and
// start empty/false.
func FromRaw(r RawState) *Board {
	b := &Board{
		pieces: [NumPieceTypes]Bitboard{
			HQ:               r.HQ,
			Infantry:         r.Infantry,
			ArmoredInfantry:  r.ArmoredInfantry,
			AirborneInfantry: r.AirborneInfantry,
			Artillery:        r.Artillery,
			ArmoredArtillery: r.ArmoredArtillery,
			HeavyArtillery:   r.HeavyArtillery,
		},
		occupiedBy:    [NumSides]Bitboard{Red: r.OccupiedRed, Blue: r.OccupiedBlue},
		orient0:       r.OrientBit0,
		orient1:       r.OrientBit1,
		orient2:       r.OrientBit2,
		bombardedBy:   [NumSides]Bitboard{Red: r.BombardedByRed, Blue: r.BombardedByBlue},
		adjToInfantry: [NumSides]Bitboard{Red: r.AdjToInfantryRed, Blue: r.AdjToInfantryBlue},
		reserves:      [NumSides]ReserveFleet{Red: ReserveFromInts(r.ReserveRed), Blue: ReserveFromInts(r.ReserveBlue)},
		turn:          r.Turn,
		turnMoves:     r.TurnMoves,
		turnAutoMoves: r.TurnAutoMoves,
		turnPieces:    r.TurnPieces,
		freeCapture: freeCaptureSnapshot{
			Clusters:  r.FreeCaptureMask,
			Enemies:   r.FreeCaptureEnemy,
			Allowance: r.FreeCaptureAllow,
		},
	}
	return b
}
