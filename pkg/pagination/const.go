package pagination

import "math"

// PageDefaultSize is the page size used when a request does not set one.
const PageDefaultSize = 20

// PageMaxSize caps the page size a client can ask for.
const PageMaxSize = 100

// MaxOffset bounds how far into a result set a request may reach.
const MaxOffset = math.MaxInt32
