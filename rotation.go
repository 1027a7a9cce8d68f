package gc9d01

// Rotation defines pixel rotation.
type Rotation uint8

// Supported rotations.
const (
	NoRotation Rotation = iota
	Rotate90            // Rotate 90° clock wise
	Rotate180           // Rotate 180°
	Rotate270           // Rotate 270° clock wise
)

func (r Rotation) String() string {
	switch r % 4 {
	case Rotate90:
		return "90°"
	case Rotate180:
		return "180°"
	case Rotate270:
		return "270°"
	default:
		return "0°"
	}
}

// swapsAxes is true if columns run vertically.
func (r Rotation) swapsAxes() bool {
	return r%4 == Rotate90 || r%4 == Rotate270
}

// Memory Data Access Control (MADCTL) bit fields.
const (
	_                           byte = 1 << iota // D0: reserved
	_                                            // D1: reserved
	gc9d01DisplayDataLatchOrder                  // D2: MH
	gc9d01BGROrder                               // D3: BGR
	gc9d01LineAddressOrder                       // D4: ML
	gc9d01PageColumnOrder                        // D5: MV
	gc9d01ColumnAddressOrder                     // D6: MX
	gc9d01PageAddressOrder                       // D7: MY
)

// SetRotation changes the memory scan direction. At 90° and 270° the panel
// width and height are swapped, as are the column and row offsets.
func (d *Dev) SetRotation(rotation Rotation) error {
	rotation &= 3

	var madctl byte
	switch rotation {
	case Rotate90:
		madctl = gc9d01ColumnAddressOrder | gc9d01PageColumnOrder
	case Rotate180:
		madctl = gc9d01ColumnAddressOrder | gc9d01PageAddressOrder
	case Rotate270:
		madctl = gc9d01PageAddressOrder | gc9d01PageColumnOrder
	}
	if err := d.command(gc9d01MADCTL, madctl); err != nil {
		return err
	}
	d.rotation = rotation
	return nil
}

// Rotation returns the current rotation.
func (d *Dev) Rotation() Rotation {
	return d.rotation
}
