package brush

import "errors"

var (
	// ErrInvalidEdit is wrapped by every rejected move, split, snap or
	// transform. The geometry is unchanged when it is returned.
	ErrInvalidEdit = errors.New("brush: invalid edit")

	// ErrBrushNull reports that a set of faces encloses no volume.
	ErrBrushNull = errors.New("brush: faces enclose no volume")

	// ErrKernelFault reports an internal inconsistency: the kernel produced a
	// graph it could not link. The edit was rolled back.
	ErrKernelFault = errors.New("brush: kernel fault")
)
