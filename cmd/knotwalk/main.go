// Command knotwalk classifies closed polygonal walks as knotted or unknotted
// through their Alexander polynomial.
//
//	knotwalk run --walks 1000 --length 60 --table
//	knotwalk eval curve.txt --t -1,2 --matrix
package main

func main() {
	Execute()
}
