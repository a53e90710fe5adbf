// Package compress implements the compression schemes used by id
// Software's 16-bit era data files: the id-flavored Huffman coder found
// in VGADICT/VGAGRAPH, the Carmack word-pointer scheme used by GAMEMAPS,
// and word- and byte-oriented RLE with a sentinel tag (RLEW/RLEB).
//
// All formats are little-endian. Expansion is what readers need; the
// compression direction is provided as well so archives can be rebuilt.
package compress
