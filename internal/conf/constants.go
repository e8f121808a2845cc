package conf

// DefaultInitialCapacity - Number of slots a table starts with unless configured otherwise, must be a power of 2
const DefaultInitialCapacity int64 = 16

// DefaultGrowthFactor - Factor the capacity is multiplied with when a table grows, must be a power of 2
const DefaultGrowthFactor int64 = 2

// MaxCapacity - Largest capacity a table may ask for, the next doubling would overflow int64
const MaxCapacity int64 = 1 << 62

// MaxLoadNumerator - Numerator of the load factor that triggers growth before an insertion
const MaxLoadNumerator int64 = 1

// MaxLoadDenominator - Denominator of the load factor that triggers growth before an insertion
const MaxLoadDenominator int64 = 2
