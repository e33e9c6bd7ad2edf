package field

import (
	"errors"
	"fmt"
)

// ErrUnsupportedOrder is returned when no primitive polynomial is tabulated
// for the requested field order.
var ErrUnsupportedOrder = errors.New("unsupported field order")

// Primitive returns the tabulated primitive polynomial of degree order,
// defining GF(2^order). Orders 2 through 311 are supported; the table is
// read-only input data, not derived at runtime.
func Primitive(order int) (Polynomial, error) {
	taps, ok := primitiveTaps[order]
	if !ok {
		return Polynomial{}, fmt.Errorf("no primitive polynomial for order %d: %w",
			order, ErrUnsupportedOrder)
	}
	exps := make([]int, 0, len(taps)+2)
	exps = append(exps, order, 0)
	exps = append(exps, taps...)
	return fromExponents(exps), nil
}

// MinOrder and MaxOrder bound the tabulated field orders.
const (
	MinOrder = 2
	MaxOrder = 311
)

// primitiveTaps lists, per degree n, the exponents of the middle terms of a
// primitive polynomial x^n + ... + 1 over GF(2). The values are feedback tap
// positions of maximal-length LFSRs taken from the standard published tables.
var primitiveTaps = map[int][]int{
	2:   {1},
	3:   {2},
	4:   {3},
	5:   {3},
	6:   {5},
	7:   {6},
	8:   {6, 5, 4},
	9:   {5},
	10:  {7},
	11:  {9},
	12:  {6, 4, 1},
	13:  {4, 3, 1},
	14:  {5, 3, 1},
	15:  {14},
	16:  {15, 13, 4},
	17:  {14},
	18:  {11},
	19:  {6, 2, 1},
	20:  {17},
	21:  {19},
	22:  {21},
	23:  {18},
	24:  {23, 22, 17},
	25:  {22},
	26:  {6, 2, 1},
	27:  {5, 2, 1},
	28:  {25},
	29:  {27},
	30:  {6, 4, 1},
	31:  {28},
	32:  {22, 2, 1},
	33:  {20},
	34:  {27, 2, 1},
	35:  {33},
	36:  {25},
	37:  {5, 4, 3, 2, 1},
	38:  {6, 5, 1},
	39:  {35},
	40:  {38, 21, 19},
	41:  {38},
	42:  {41, 20, 19},
	43:  {42, 38, 37},
	44:  {43, 18, 17},
	45:  {44, 42, 41},
	46:  {45, 26, 25},
	47:  {42},
	48:  {47, 21, 20},
	49:  {40},
	50:  {49, 24, 23},
	51:  {50, 36, 35},
	52:  {49},
	53:  {52, 38, 37},
	54:  {53, 18, 17},
	55:  {31},
	56:  {55, 35, 34},
	57:  {50},
	58:  {39},
	59:  {58, 38, 37},
	60:  {59},
	61:  {60, 46, 45},
	62:  {61, 6, 5},
	63:  {62},
	64:  {63, 61, 60},
	65:  {47},
	66:  {65, 57, 56},
	67:  {66, 58, 57},
	68:  {59},
	69:  {67, 42, 40},
	70:  {69, 55, 54},
	71:  {65},
	72:  {66, 25, 19},
	73:  {48},
	74:  {73, 59, 58},
	75:  {74, 65, 64},
	76:  {75, 41, 40},
	77:  {76, 47, 46},
	78:  {77, 59, 58},
	79:  {70},
	80:  {79, 43, 42},
	81:  {77},
	82:  {79, 47, 44},
	83:  {82, 38, 37},
	84:  {71},
	85:  {84, 58, 57},
	86:  {85, 74, 73},
	87:  {74},
	88:  {87, 17, 16},
	89:  {51},
	90:  {89, 72, 71},
	91:  {90, 8, 7},
	92:  {91, 80, 79},
	93:  {91},
	94:  {73},
	95:  {84},
	96:  {94, 49, 47},
	97:  {91},
	98:  {87},
	99:  {97, 54, 52},
	100: {63},
	101: {100, 95, 94},
	102: {101, 36, 35},
	103: {94},
	104: {103, 94, 93},
	105: {89},
	106: {91},
	107: {105, 44, 42},
	108: {77},
	109: {108, 103, 102},
	110: {109, 98, 97},
	111: {101},
	112: {110, 69, 67},
	113: {104},
	114: {113, 33, 32},
	115: {114, 101, 100},
	116: {115, 46, 45},
	117: {115, 99, 97},
	118: {85},
	119: {111},
	120: {118, 114, 111},
	121: {103},
	122: {121, 63, 62},
	123: {121},
	124: {87},
	125: {124, 18, 17},
	126: {125, 90, 89},
	127: {126},
	128: {126, 101, 99},
	129: {124},
	130: {127},
	131: {130, 84, 83},
	132: {103},
	133: {132, 82, 81},
	134: {77},
	135: {124},
	136: {135, 11, 10},
	137: {116},
	138: {137, 131, 130},
	139: {136, 134, 131},
	140: {111},
	141: {140, 110, 109},
	142: {121},
	143: {142, 123, 122},
	144: {143, 75, 74},
	145: {93},
	146: {145, 87, 86},
	147: {146, 110, 109},
	148: {121},
	149: {148, 40, 39},
	150: {97},
	151: {148},
	152: {151, 87, 86},
	153: {152},
	154: {152, 27, 25},
	155: {154, 124, 123},
	156: {155, 41, 40},
	157: {156, 131, 130},
	158: {157, 132, 131},
	159: {128},
	160: {159, 142, 141},
	161: {143},
	162: {161, 75, 74},
	163: {162, 104, 103},
	164: {163, 151, 150},
	165: {164, 135, 134},
	166: {165, 128, 127},
	167: {161},
	168: {166, 153, 151},
	169: {168, 85, 84},
	170: {169, 23, 22},
	171: {170, 163, 162},
	172: {165},
	173: {172, 101, 100},
	174: {161},
	175: {174, 57, 56},
	176: {175, 119, 118},
	177: {169},
	178: {91},
	179: {178, 117, 116},
	180: {179, 83, 82},
	181: {180, 175, 174},
	182: {181, 92, 91},
	183: {127},
	184: {183, 121, 120},
	185: {161},
	186: {185, 85, 84},
	187: {186, 179, 178},
	188: {187, 149, 148},
	189: {188, 127, 126},
	190: {189, 111, 110},
	191: {182},
	192: {191, 178, 177},
	193: {178},
	194: {107},
	195: {194, 129, 128},
	196: {193, 101, 99},
	197: {196, 185, 184},
	198: {133},
	199: {165},
	200: {198, 163, 161},
	201: {187},
	202: {147},
	203: {202, 197, 196},
	204: {201, 191, 190},
	205: {204, 175, 174},
	206: {205, 29, 28},
	207: {164},
	208: {207, 185, 184},
	209: {203},
	210: {209, 103, 102},
	211: {210, 165, 164},
	212: {107},
	213: {212, 99, 98},
	214: {213, 105, 104},
	215: {192},
	216: {215, 113, 112},
	217: {172},
	218: {207},
	219: {218, 171, 170},
	220: {219, 211, 210},
	221: {220, 209, 208},
	222: {221, 147, 146},
	223: {190},
	224: {223, 207, 206},
	225: {193},
	226: {225, 129, 128},
	227: {226, 121, 120},
	228: {227, 115, 113},
	229: {228, 219, 218},
	230: {229, 69, 67},
	231: {205},
	232: {231, 183, 182},
	233: {159},
	234: {203},
	235: {234, 43, 42},
	236: {231},
	237: {236, 77, 76},
	238: {237, 171, 170},
	239: {203},
	240: {239, 207, 205},
	241: {171},
	242: {147},
	243: {242, 239, 238},
	244: {243, 131, 130},
	245: {244, 213, 212},
	246: {245, 91, 90},
	247: {165},
	248: {245, 111, 107},
	249: {163},
	250: {147},
	251: {250, 55, 54},
	252: {251, 125, 124},
	253: {252, 49, 44},
	254: {253, 25, 23},
	255: {203},
	256: {254, 251, 246},
	257: {245},
	258: {175},
	259: {258, 254, 253},
	260: {259, 137, 136},
	261: {260, 249, 248},
	262: {261, 75, 74},
	263: {170},
	264: {263, 179, 178},
	265: {223},
	266: {219},
	267: {266, 29, 28},
	268: {243},
	269: {268, 207, 206},
	270: {133},
	271: {213},
	272: {271, 165, 164},
	273: {250},
	274: {207},
	275: {274, 265, 264},
	276: {275, 113, 112},
	277: {276, 233, 232},
	278: {273},
	279: {274},
	280: {278, 275, 271},
	281: {188},
	282: {247},
	283: {282, 277, 276},
	284: {165},
	285: {284, 281, 280},
	286: {217},
	287: {216},
	288: {287, 278, 277},
	289: {268},
	290: {289, 287, 286},
	291: {290, 173, 172},
	292: {195},
	293: {292, 155, 154},
	294: {233},
	295: {247},
	296: {295, 183, 182},
	297: {292},
	298: {287},
	299: {298, 295, 294},
	300: {293},
	301: {300, 293, 292},
	302: {261},
	303: {302, 297, 296},
	304: {303, 201, 200},
	305: {203},
	306: {305, 157, 156},
	307: {306, 295, 294},
	308: {307, 155, 154},
	309: {308, 195, 194},
	310: {309, 251, 250},
	311: {233},
}
