package core

// Methods is the fixed list of HTTP methods offered by the method panel.
var Methods = []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}

// MethodIndex returns the index of method in Methods, or 0 when unknown.
func MethodIndex(method string) int {
	for i, m := range Methods {
		if m == method {
			return i
		}
	}
	return 0
}
