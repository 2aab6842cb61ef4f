package utils

// Chunk divide um slice em lotes de no máximo size elementos.
// O último lote pode ser menor; um slice vazio resulta em zero lotes.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		return nil
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := i + size
		if end > len(items) {
			end = len(items)
		}
		chunks = append(chunks, items[i:end])
	}

	return chunks
}
