package parser

// Format classifies an instruction's 32-bit field layout.
type Format int

const (
	FormatR Format = iota
	FormatI
	FormatJ
)

// Class further distinguishes instructions sharing a Format, since the
// encoder packs their operands differently (spec §4.6).
type Class int

const (
	ClassRArith      Class = iota // add, sub, slt, ... : rd, rs, rt
	ClassRShiftConst              // sll, srl, sra : rd, rt, shamt
	ClassRJumpReg                 // jr, jalr : rs
	ClassIArith                   // addi, ori, ... : rt, rs, imm
	ClassILoadStore                // lw, sw, ... : rt, offset(base)
	ClassIBranch2Reg               // beq, bne : rs, rt, label
	ClassIBranch1Reg                // bgez, bltz, ... : rs, label
	ClassIUpperImm                   // lui : rt, imm
	ClassJ                            // j, jal : label
	ClassNoOperand                     // nop, syscall, break
)

// InstrInfo is the metadata table entry shared by the Validator (arity)
// and the Encoder (field packing).
type InstrInfo struct {
	Format Format
	Class  Class
	Opcode uint32
	Funct  uint32 // valid for R-type
	ImmRT  uint32 // REGIMM distinguishing constant for ClassIBranch1Reg instructions sharing opcode 0x01; 0 otherwise
	Arity  int    // number of Operand values (not raw tokens) required
}

// InstructionTable is the closed set of MIPS-I core instructions this
// assembler recognizes, keyed by lower-case mnemonic.
var InstructionTable = map[string]InstrInfo{
	// R arithmetic/logical/compare/shift-by-register: rd, rs, rt
	"add":  {FormatR, ClassRArith, 0x00, 0x20, 0, 3},
	"addu": {FormatR, ClassRArith, 0x00, 0x21, 0, 3},
	"and":  {FormatR, ClassRArith, 0x00, 0x24, 0, 3},
	"nor":  {FormatR, ClassRArith, 0x00, 0x27, 0, 3},
	"or":   {FormatR, ClassRArith, 0x00, 0x25, 0, 3},
	"slt":  {FormatR, ClassRArith, 0x00, 0x2A, 0, 3},
	"sltu": {FormatR, ClassRArith, 0x00, 0x2B, 0, 3},
	"sub":  {FormatR, ClassRArith, 0x00, 0x22, 0, 3},
	"subu": {FormatR, ClassRArith, 0x00, 0x23, 0, 3},
	"xor":  {FormatR, ClassRArith, 0x00, 0x26, 0, 3},
	"sllv": {FormatR, ClassRArith, 0x00, 0x04, 0, 3},
	"srlv": {FormatR, ClassRArith, 0x00, 0x06, 0, 3},
	"srav": {FormatR, ClassRArith, 0x00, 0x07, 0, 3},

	// R shift-by-constant: rd, rt, shamt
	"sll": {FormatR, ClassRShiftConst, 0x00, 0x00, 0, 3},
	"srl": {FormatR, ClassRShiftConst, 0x00, 0x02, 0, 3},
	"sra": {FormatR, ClassRShiftConst, 0x00, 0x03, 0, 3},

	// R jump-register: rs
	"jr":   {FormatR, ClassRJumpReg, 0x00, 0x08, 0, 1},
	"jalr": {FormatR, ClassRJumpReg, 0x00, 0x09, 0, 1},

	// I arithmetic/compare-immediate: rt, rs, imm
	"addi":  {FormatI, ClassIArith, 0x08, 0, 0, 3},
	"addiu": {FormatI, ClassIArith, 0x09, 0, 0, 3},
	"andi":  {FormatI, ClassIArith, 0x0C, 0, 0, 3},
	"ori":   {FormatI, ClassIArith, 0x0D, 0, 0, 3},
	"xori":  {FormatI, ClassIArith, 0x0E, 0, 0, 3},
	"slti":  {FormatI, ClassIArith, 0x0A, 0, 0, 3},
	"sltiu": {FormatI, ClassIArith, 0x0B, 0, 0, 3},

	// I load/store: rt, offset(base)
	"lw":  {FormatI, ClassILoadStore, 0x23, 0, 0, 2},
	"lh":  {FormatI, ClassILoadStore, 0x21, 0, 0, 2},
	"lhu": {FormatI, ClassILoadStore, 0x25, 0, 0, 2},
	"lb":  {FormatI, ClassILoadStore, 0x20, 0, 0, 2},
	"lbu": {FormatI, ClassILoadStore, 0x24, 0, 0, 2},
	"ll":  {FormatI, ClassILoadStore, 0x30, 0, 0, 2},
	"sw":  {FormatI, ClassILoadStore, 0x2B, 0, 0, 2},
	"sb":  {FormatI, ClassILoadStore, 0x28, 0, 0, 2},
	"sh":  {FormatI, ClassILoadStore, 0x29, 0, 0, 2},
	"sc":  {FormatI, ClassILoadStore, 0x38, 0, 0, 2},

	// I branch-two-register: rs, rt, label
	"beq": {FormatI, ClassIBranch2Reg, 0x04, 0, 0, 3},
	"bne": {FormatI, ClassIBranch2Reg, 0x05, 0, 0, 3},

	// I branch-one-register: rs, label
	"bgez":   {FormatI, ClassIBranch1Reg, 0x01, 0, 0x01, 2},
	"bgezal": {FormatI, ClassIBranch1Reg, 0x01, 0, 0x11, 2},
	"bltz":   {FormatI, ClassIBranch1Reg, 0x01, 0, 0x00, 2},
	"bltzal": {FormatI, ClassIBranch1Reg, 0x01, 0, 0x10, 2},
	"bgtz":   {FormatI, ClassIBranch1Reg, 0x07, 0, 0x00, 2},
	"blez":   {FormatI, ClassIBranch1Reg, 0x06, 0, 0x00, 2},

	// I upper-immediate: rt, imm
	"lui": {FormatI, ClassIUpperImm, 0x0F, 0, 0, 2},

	// J: label
	"j":   {FormatJ, ClassJ, 0x02, 0, 0, 1},
	"jal": {FormatJ, ClassJ, 0x03, 0, 0, 1},

	// No-operand
	"nop":     {FormatR, ClassNoOperand, 0x00, 0x00, 0, 0},
	"syscall": {FormatR, ClassNoOperand, 0x00, 0x0C, 0, 0},
	"break":   {FormatR, ClassNoOperand, 0x00, 0x0D, 0, 0},
}

// LookupInstruction returns the metadata for a real (non-pseudo) mnemonic.
func LookupInstruction(mnemonic string) (InstrInfo, bool) {
	info, ok := InstructionTable[mnemonic]
	return info, ok
}
