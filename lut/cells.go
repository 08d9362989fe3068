package lut

// C1TruthTable returns the base truth table of the c1 cell. The cell is a
// pair of 2:1 muxes feeding a third mux with a decoded select. Address bits,
// LSB first: A0, A1, SA, B0, B1, SB, S0, S1.
//
//	f1 = SA ? A1 : A0
//	f2 = SB ? B1 : B0
//	f  = (S0 | S1) ? f1 : f2
func C1TruthTable() TruthTable {
	var t TruthTable

	for addr := 0; addr < TableBits; addr++ {
		a0 := addr & 1
		a1 := (addr >> 1) & 1
		sa := (addr >> 2) & 1
		b0 := (addr >> 3) & 1
		b1 := (addr >> 4) & 1
		sb := (addr >> 5) & 1
		s0 := (addr >> 6) & 1
		s1 := (addr >> 7) & 1

		f1 := a0
		if sa == 1 {
			f1 = a1
		}

		f2 := b0
		if sb == 1 {
			f2 = b1
		}

		f := f1
		if s0 == 0 && s1 == 0 {
			f = f2
		}

		t.SetBit(addr, uint64(f))
	}

	return t
}

// C2TruthTable returns the base truth table of the c2 cell. The cell is a
// 4:1 mux whose selects are decoded from two input pairs. Address bits, LSB
// first: D00, D01, D10, D11, A1, B1, A0, B0.
//
//	s1  = !(A1 | B1)
//	s0  = !(A0 & B0)
//	out = D[s1][s0]
func C2TruthTable() TruthTable {
	var t TruthTable

	for addr := 0; addr < TableBits; addr++ {
		d := [4]int{
			addr & 1,
			(addr >> 1) & 1,
			(addr >> 2) & 1,
			(addr >> 3) & 1,
		}
		a1 := (addr >> 4) & 1
		b1 := (addr >> 5) & 1
		a0 := (addr >> 6) & 1
		b0 := (addr >> 7) & 1

		s1 := 0
		if a1 == 0 && b1 == 0 {
			s1 = 1
		}

		s0 := 0
		if a0 == 0 || b0 == 0 {
			s0 = 1
		}

		t.SetBit(addr, uint64(d[s1*2+s0]))
	}

	return t
}
