// opcodes_cb.go - CB-prefixed opcode table: rotates/shifts, BIT, RES, SET
// over the eight 3-bit-encoded operands (B,C,D,E,H,L,(HL),A).

package z80

func (c *CPU) initCBOps() {
	rotFns := [8]func(*CPU, byte) byte{
		(*CPU).rlc, (*CPU).rrc, (*CPU).rl, (*CPU).rr,
		(*CPU).sla, (*CPU).sra, (*CPU).sll, (*CPU).srl,
	}

	for op := 0; op < 256; op++ {
		opcode := byte(op)
		group := opcode >> 6
		reg := opcode & 7
		bit := uint((opcode >> 3) & 7)

		switch group {
		case 0:
			fn := rotFns[(opcode>>3)&7]
			c.cbOps[op] = func(cpu *CPU) {
				v := fn(cpu, cpu.readReg8(reg))
				cpu.writeReg8(reg, v)
				if reg == 6 {
					cpu.tick(15)
				} else {
					cpu.tick(8)
				}
			}
		case 1:
			c.cbOps[op] = func(cpu *CPU) {
				v := cpu.readReg8(reg)
				undoc := v
				if reg == 6 {
					undoc = byte(cpu.HL() >> 8)
				}
				cpu.bitTest(v, bit, undoc)
				if reg == 6 {
					cpu.tick(12)
				} else {
					cpu.tick(8)
				}
			}
		case 2:
			c.cbOps[op] = func(cpu *CPU) {
				cpu.writeReg8(reg, cpu.readReg8(reg)&^(1<<bit))
				if reg == 6 {
					cpu.tick(15)
				} else {
					cpu.tick(8)
				}
			}
		default:
			c.cbOps[op] = func(cpu *CPU) {
				cpu.writeReg8(reg, cpu.readReg8(reg)|(1<<bit))
				if reg == 6 {
					cpu.tick(15)
				} else {
					cpu.tick(8)
				}
			}
		}
	}
}
