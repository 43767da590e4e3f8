/*
DESCRIPTION
  block.go provides the decoded 8x8 block type.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


package jpegbase

// Block is one decoded 8x8 DCT block: a DC value and 63 AC values, in
// zigzag order as transmitted. An EOB is not stored as a tombstone;
// positions past EOB are left zero.
type Block struct {
	DC int16
	AC [63]int16
}
