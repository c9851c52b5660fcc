package field

/*

# Batched bitfield transfers

This package moves an arbitrary range of bits, possibly sub element
and possibly spanning several storage elements, in and out of a single
unsigned register. It is the library equivalent of C bitfields: the
caller names a range, the package moves whole elements wherever the
range's alignment permits, and single masked operations everywhere
else.

It follows the style of small composable functions over explicit
layouts, with a burden of knowledge on the caller for hot paths: width
preconditions panic rather than return errors, and aliased access is
an explicit opt in.

## The two configuration axes

Two independent rules decide where a logical bit lives.

The ordering policy places logical positions within one element:

	Ascending, 8 bit element          Descending, 8 bit element
	physical  7 6 5 4 3 2 1 0         physical  7 6 5 4 3 2 1 0
	logical   7 6 5 4 3 2 1 0         logical   0 1 2 3 4 5 6 7

The endianness qualifier orders the chunks of a multi element range by
significance. LoadLE/StoreLE make the lowest addressed element the
least significant chunk; LoadBE/StoreBE make it the most significant:

	elements   [e0] [e1] [e2]
	LE value    e2 . e1 . e0     (e0 least significant)
	BE value    e0 . e1 . e2     (e0 most significant)

Load and Store pick the qualified form matching the host's byte
order; they are the right default for in memory work and the wrong
choice for serialized layouts.

## Decomposition

A span splits at element boundaries into an Enclave (one element) or a
Region (head partial, body of whole elements, tail partial):

	   head=3                                  tail=5
	   v                                       v
	[..xxxxx] [xxxxxxxx] [xxxxxxxx] [xxxxx...]
	 head      body       body       tail

Partial elements move through masked get/set; body elements move
whole. The live window of a partial under each ordering:

	              head partial              tail partial
	Ascending     [head, width), shift=head [0, tail), shift=0
	Descending    [0, width-head), shift=0  [width-tail, width), shift=width-tail

## Aliased access

Distinct spans may cover disjoint bits of the same element. Mutating
through plain spans from several goroutines would tear; Shared returns
a view whose masked clear and merge are single atomic operations, so
disjoint writers never lose each other's bits. Writers to the same
bits race either way; that partitioning is the caller's job.

*/
