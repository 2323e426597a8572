// opcodes_index.go - DD/FD (IX/IY) prefix handling, including the
// DDCB/FDCB displaced CB-space forms.
//
// The two prefixes are identical in every respect except which 16-bit
// register they substitute for HL, so a single table of closures serves
// both: each handler consults c.prefix at run time via ixPtr/indexedAddr
// rather than having dedicated IX and IY code paths (spec §4.1 "shared
// indexed table parameterised over IX/IY").

package z80

func (c *CPU) ixPtr() *uint16 {
	if c.prefix == prefixIY {
		return &c.IY
	}
	return &c.IX
}

// indexedAddr fetches the displacement byte following a DD/FD-prefixed
// opcode and returns the effective (IX+d)/(IY+d) address, latching it
// into WZ as real hardware does.
func (c *CPU) indexedAddr() uint16 {
	d := int8(c.fetchByte())
	addr := uint16(int32(*c.ixPtr()) + int32(d))
	c.WZ = addr
	return addr
}

// execIndexed is reached from baseOps[0xDD]/[0xFD]: it fetches the
// opcode following the prefix and either dispatches through the shared
// indexed table or, for 0xCB, into the displaced CB-space path.
func (c *CPU) execIndexed(prefix byte) {
	c.prefix = prefix
	op := c.fetchOpcode()
	if op == 0xCB {
		c.execIndexedCB()
	} else {
		c.ddOps[op](c)
	}
	c.prefix = prefixNone
}

func (c *CPU) execIndexedCB() {
	addr := c.indexedAddr()
	op := c.fetchByte()
	group := op >> 6
	bit := uint((op >> 3) & 7)

	switch group {
	case 0: // rotate/shift
		fn := [8]func(*CPU, byte) byte{
			(*CPU).rlc, (*CPU).rrc, (*CPU).rl, (*CPU).rr,
			(*CPU).sla, (*CPU).sra, (*CPU).sll, (*CPU).srl,
		}[(op>>3)&7]
		c.write(addr, fn(c, c.read(addr)))
		c.tick(23)
	case 1: // BIT b,(IX+d)
		c.bitTest(c.read(addr), bit, byte(c.WZ>>8))
		c.tick(20)
	case 2: // RES b,(IX+d)
		c.write(addr, c.read(addr)&^(1<<bit))
		c.tick(23)
	default: // SET b,(IX+d)
		c.write(addr, c.read(addr)|(1<<bit))
		c.tick(23)
	}
}

func (c *CPU) initIndexedOps() {
	for op := 0; op < 256; op++ {
		opcode := byte(op)
		c.ddOps[op] = func(cpu *CPU) {
			cpu.tick(4)
			cpu.baseOps[opcode](cpu)
		}
	}

	c.ddOps[0x21] = func(cpu *CPU) { *cpu.ixPtr() = cpu.fetchWord(); cpu.tick(14) }
	c.ddOps[0x22] = func(cpu *CPU) {
		addr := cpu.fetchWord()
		v := *cpu.ixPtr()
		cpu.write(addr, byte(v))
		cpu.write(addr+1, byte(v>>8))
		cpu.tick(20)
	}
	c.ddOps[0x2A] = func(cpu *CPU) {
		addr := cpu.fetchWord()
		lo := cpu.read(addr)
		hi := cpu.read(addr + 1)
		*cpu.ixPtr() = uint16(hi)<<8 | uint16(lo)
		cpu.tick(20)
	}
	c.ddOps[0x23] = func(cpu *CPU) { *cpu.ixPtr()++; cpu.tick(10) }
	c.ddOps[0x2B] = func(cpu *CPU) { *cpu.ixPtr()--; cpu.tick(10) }

	for _, e := range []struct {
		op  byte
		src func(*CPU) uint16
	}{
		{0x09, func(cpu *CPU) uint16 { return cpu.BC() }},
		{0x19, func(cpu *CPU) uint16 { return cpu.DE() }},
		{0x29, func(cpu *CPU) uint16 { return *cpu.ixPtr() }},
		{0x39, func(cpu *CPU) uint16 { return cpu.SP }},
	} {
		src := e.src
		c.ddOps[e.op] = func(cpu *CPU) {
			p := cpu.ixPtr()
			*p = cpu.add16(*p, src(cpu))
			cpu.tick(15)
		}
	}

	c.ddOps[0xE5] = func(cpu *CPU) { cpu.pushWord(*cpu.ixPtr()); cpu.tick(15) }
	c.ddOps[0xE1] = func(cpu *CPU) { *cpu.ixPtr() = cpu.popWord(); cpu.tick(14) }
	c.ddOps[0xE9] = func(cpu *CPU) { cpu.PC = *cpu.ixPtr(); cpu.tick(8) }
	c.ddOps[0xF9] = func(cpu *CPU) { cpu.SP = *cpu.ixPtr(); cpu.tick(10) }
	c.ddOps[0xE3] = func(cpu *CPU) {
		p := cpu.ixPtr()
		lo := cpu.read(cpu.SP)
		hi := cpu.read(cpu.SP + 1)
		cpu.write(cpu.SP, byte(*p))
		cpu.write(cpu.SP+1, byte(*p>>8))
		*p = uint16(hi)<<8 | uint16(lo)
		cpu.tick(23)
	}

	c.ddOps[0x34] = func(cpu *CPU) { a := cpu.indexedAddr(); cpu.write(a, cpu.inc8(cpu.read(a))); cpu.tick(23) }
	c.ddOps[0x35] = func(cpu *CPU) { a := cpu.indexedAddr(); cpu.write(a, cpu.dec8(cpu.read(a))); cpu.tick(23) }
	c.ddOps[0x36] = func(cpu *CPU) {
		a := cpu.indexedAddr()
		n := cpu.fetchByte()
		cpu.write(a, n)
		cpu.tick(19)
	}

	aluFns := [8]func(*CPU, byte){
		(*CPU).aluAdd, (*CPU).aluAdc, (*CPU).aluSub, (*CPU).aluSbc,
		(*CPU).aluAnd, (*CPU).aluXor, (*CPU).aluOr, (*CPU).aluCp,
	}
	for op := 0x80; op <= 0xBF; op++ {
		if op&7 != 6 {
			continue
		}
		fn := aluFns[(op>>3)&7]
		c.ddOps[op] = func(cpu *CPU) {
			a := cpu.indexedAddr()
			fn(cpu, cpu.read(a))
			cpu.tick(19)
		}
	}

	for op := 0x40; op <= 0x7F; op++ {
		if op == 0x76 {
			continue
		}
		dest := byte((op >> 3) & 7)
		src := byte(op & 7)
		if dest != 6 && src != 6 {
			continue
		}
		d, s := dest, src
		c.ddOps[op] = func(cpu *CPU) {
			a := cpu.indexedAddr()
			if s == 6 {
				cpu.writeReg8(d, cpu.read(a))
			} else {
				cpu.write(a, cpu.readReg8(s))
			}
			cpu.tick(19)
		}
	}

	copy(c.fdOps[:], c.ddOps[:])
}
