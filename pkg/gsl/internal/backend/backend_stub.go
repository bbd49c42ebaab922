//go:build !cgo || windows

package backend

import "unsafe"

// Stub implementations for non-CGO builds or Windows. These keep the
// package compiling without the native library; every fallible call
// reports ErrNotBuilt. The handle aliases collapse to unsafe.Pointer so
// public wrapper types build identically under both flavors.

// Built reports whether the native library is linked into this binary.
func Built() bool { return false }

// Version returns the version string of the linked GSL library, or empty
// when the native bindings are not built.
func Version() string { return "" }

// Vector is the native handle for a gsl_vector of doubles.
type Vector = unsafe.Pointer

func VectorAlloc(int) (Vector, error) { return nil, ErrNotBuilt }

func VectorFree(Vector) {}

func VectorLen(Vector) int { return 0 }

func VectorGet(Vector, int) float64 { return 0 }

func VectorSet(Vector, int, float64) {}

func VectorSetAll(Vector, float64) {}

func VectorSetZero(Vector) {}

func VectorSetBasis(Vector, int) error { return ErrNotBuilt }

func VectorData(Vector) []float64 { return nil }

func VectorSetData(Vector, []float64) error { return ErrNotBuilt }

func VectorMemcpy(Vector, Vector) error { return ErrNotBuilt }

func VectorSwapElements(Vector, int, int) error { return ErrNotBuilt }

func VectorReverse(Vector) error { return ErrNotBuilt }

func VectorAdd(Vector, Vector) error { return ErrNotBuilt }

func VectorSub(Vector, Vector) error { return ErrNotBuilt }

func VectorMul(Vector, Vector) error { return ErrNotBuilt }

func VectorDiv(Vector, Vector) error { return ErrNotBuilt }

func VectorScale(Vector, float64) error { return ErrNotBuilt }

func VectorAddConstant(Vector, float64) error { return ErrNotBuilt }

func VectorMax(Vector) float64 { return 0 }

func VectorMin(Vector) float64 { return 0 }

func VectorMinmax(Vector) (min, max float64) { return 0, 0 }

func VectorMaxIndex(Vector) int { return 0 }

func VectorMinIndex(Vector) int { return 0 }

func VectorIsNull(Vector) bool { return false }

func VectorIsPos(Vector) bool { return false }

func VectorIsNeg(Vector) bool { return false }

// Matrix is the native handle for a row-major gsl_matrix of doubles.
type Matrix = unsafe.Pointer

func MatrixAlloc(int, int) (Matrix, error) { return nil, ErrNotBuilt }

func MatrixFree(Matrix) {}

func MatrixDims(Matrix) (rows, cols int) { return 0, 0 }

func MatrixGet(Matrix, int, int) float64 { return 0 }

func MatrixSet(Matrix, int, int, float64) {}

func MatrixSetAll(Matrix, float64) {}

func MatrixSetZero(Matrix) {}

func MatrixSetIdentity(Matrix) {}

func MatrixData(Matrix) []float64 { return nil }

func MatrixSetData(Matrix, []float64) error { return ErrNotBuilt }

func MatrixMemcpy(Matrix, Matrix) error { return ErrNotBuilt }

func MatrixTranspose(Matrix) error { return ErrNotBuilt }

func MatrixTransposeMemcpy(Matrix, Matrix) error { return ErrNotBuilt }

func MatrixGetRow(Vector, Matrix, int) error { return ErrNotBuilt }

func MatrixGetCol(Vector, Matrix, int) error { return ErrNotBuilt }

func MatrixSetRow(Matrix, int, Vector) error { return ErrNotBuilt }

func MatrixSetCol(Matrix, int, Vector) error { return ErrNotBuilt }

func MatrixSwapRows(Matrix, int, int) error { return ErrNotBuilt }

func MatrixSwapColumns(Matrix, int, int) error { return ErrNotBuilt }

func MatrixAdd(Matrix, Matrix) error { return ErrNotBuilt }

func MatrixSub(Matrix, Matrix) error { return ErrNotBuilt }

func MatrixMulElements(Matrix, Matrix) error { return ErrNotBuilt }

func MatrixDivElements(Matrix, Matrix) error { return ErrNotBuilt }

func MatrixScale(Matrix, float64) error { return ErrNotBuilt }

func MatrixAddConstant(Matrix, float64) error { return ErrNotBuilt }

func MatrixMax(Matrix) float64 { return 0 }

func MatrixMin(Matrix) float64 { return 0 }

func MatrixMinmax(Matrix) (min, max float64) { return 0, 0 }

func MatrixIsNull(Matrix) bool { return false }

// Permutation is the native handle for a gsl_permutation.
type Permutation = unsafe.Pointer

func PermutationAlloc(int) (Permutation, error) { return nil, ErrNotBuilt }

func PermutationFree(Permutation) {}

func PermutationLen(Permutation) int { return 0 }

func PermutationGet(Permutation, int) int { return 0 }

func PermutationSwap(Permutation, int, int) error { return ErrNotBuilt }

func PermutationNext(Permutation) bool { return false }

func PermutationPrev(Permutation) bool { return false }

func PermutationReverse(Permutation) {}

func PermutationInverse(Permutation, Permutation) error { return ErrNotBuilt }

func PermutationValid(Permutation) bool { return false }

func PermutationMemcpy(Permutation, Permutation) error { return ErrNotBuilt }

func PermutationData(Permutation) []int { return nil }

// BLAS stubs.

func BlasDdot(Vector, Vector) (float64, error) { return 0, ErrNotBuilt }

func BlasDnrm2(Vector) float64 { return 0 }

func BlasDasum(Vector) float64 { return 0 }

func BlasIdamax(Vector) int { return 0 }

func BlasDaxpy(float64, Vector, Vector) error { return ErrNotBuilt }

func BlasDscal(float64, Vector) {}

func BlasDcopy(Vector, Vector) error { return ErrNotBuilt }

func BlasDgemv(Transpose, float64, Matrix, Vector, float64, Vector) error {
	return ErrNotBuilt
}

func BlasDgemm(Transpose, Transpose, float64, Matrix, Matrix, float64, Matrix) error {
	return ErrNotBuilt
}

// Linear algebra stubs.

func LUDecomp(Matrix, Permutation) (int, error) { return 0, ErrNotBuilt }

func LUSolve(Matrix, Permutation, Vector, Vector) error { return ErrNotBuilt }

func LUSvx(Matrix, Permutation, Vector) error { return ErrNotBuilt }

func LUDet(Matrix, int) float64 { return 0 }

func LULnDet(Matrix) float64 { return 0 }

func LUInvert(Matrix, Permutation, Matrix) error { return ErrNotBuilt }

func QRDecomp(Matrix, Vector) error { return ErrNotBuilt }

func QRSolve(Matrix, Vector, Vector, Vector) error { return ErrNotBuilt }

func QRLSSolve(Matrix, Vector, Vector, Vector, Vector) error { return ErrNotBuilt }

func CholeskyDecomp(Matrix) error { return ErrNotBuilt }

func CholeskySolve(Matrix, Vector, Vector) error { return ErrNotBuilt }

func CholeskyInvert(Matrix) error { return ErrNotBuilt }

func SVDecomp(Matrix, Matrix, Vector, Vector) error { return ErrNotBuilt }

func SVSolve(Matrix, Matrix, Vector, Vector, Vector) error { return ErrNotBuilt }

// Special function stubs.

func SfBesselJ0(float64) float64 { return 0 }

func SfBesselJ0E(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfBesselJ1(float64) float64 { return 0 }

func SfBesselJ1E(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfBesselJn(int, float64) float64 { return 0 }

func SfBesselJnE(int, float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfBesselY0(float64) float64 { return 0 }

func SfBesselY0E(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfBesselY1(float64) float64 { return 0 }

func SfBesselY1E(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfBesselYn(int, float64) float64 { return 0 }

func SfBesselYnE(int, float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfBesselI0(float64) float64 { return 0 }

func SfBesselI0E(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfBesselI1(float64) float64 { return 0 }

func SfBesselI1E(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfBesselK0(float64) float64 { return 0 }

func SfBesselK0E(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfBesselK1(float64) float64 { return 0 }

func SfBesselK1E(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfGamma(float64) float64 { return 0 }

func SfGammaE(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfLnGamma(float64) float64 { return 0 }

func SfLnGammaE(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfGammaInv(float64) float64 { return 0 }

func SfGammaIncP(float64, float64) float64 { return 0 }

func SfGammaIncPE(float64, float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfGammaIncQ(float64, float64) float64 { return 0 }

func SfGammaIncQE(float64, float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfBeta(float64, float64) float64 { return 0 }

func SfBetaE(float64, float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfLnBeta(float64, float64) float64 { return 0 }

func SfLnBetaE(float64, float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfFact(uint) float64 { return 0 }

func SfFactE(uint) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfLnFact(uint) float64 { return 0 }

func SfLnFactE(uint) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfChoose(uint, uint) float64 { return 0 }

func SfChooseE(uint, uint) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfErf(float64) float64 { return 0 }

func SfErfE(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfErfc(float64) float64 { return 0 }

func SfErfcE(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfLogErfc(float64) float64 { return 0 }

func SfLogErfcE(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfErfZ(float64) float64 { return 0 }

func SfErfZE(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfErfQ(float64) float64 { return 0 }

func SfErfQE(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfHazard(float64) float64 { return 0 }

func SfHazardE(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfExpintE1(float64) float64 { return 0 }

func SfExpintE1E(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfExpintE2(float64) float64 { return 0 }

func SfExpintE2E(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfExpintEi(float64) float64 { return 0 }

func SfExpintEiE(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfZeta(float64) float64 { return 0 }

func SfZetaE(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfZetaInt(int) float64 { return 0 }

func SfZetaIntE(int) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfEta(float64) float64 { return 0 }

func SfEtaE(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfAiryAi(float64, Mode) float64 { return 0 }

func SfAiryAiE(float64, Mode) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfAiryBi(float64, Mode) float64 { return 0 }

func SfAiryBiE(float64, Mode) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfPsi(float64) float64 { return 0 }

func SfPsiE(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfPsi1(float64) float64 { return 0 }

func SfPsi1E(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfPsiN(int, float64) float64 { return 0 }

func SfPsiNE(int, float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfLegendreP1(float64) float64 { return 0 }

func SfLegendreP1E(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfLegendreP2(float64) float64 { return 0 }

func SfLegendreP2E(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfLegendreP3(float64) float64 { return 0 }

func SfLegendreP3E(float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

func SfLegendrePl(int, float64) float64 { return 0 }

func SfLegendrePlE(int, float64) (float64, float64, error) { return 0, 0, ErrNotBuilt }

// Random number generation stubs.

// RngType is the native descriptor for a generator algorithm.
type RngType = unsafe.Pointer

// Rng is the native handle for a generator instance.
type Rng = unsafe.Pointer

func RngTypeMT19937() RngType { return nil }

func RngTypeRanlxS0() RngType { return nil }

func RngTypeRanlxS1() RngType { return nil }

func RngTypeRanlxS2() RngType { return nil }

func RngTypeRanlxD1() RngType { return nil }

func RngTypeRanlxD2() RngType { return nil }

func RngTypeRanlux389() RngType { return nil }

func RngTypeCMRG() RngType { return nil }

func RngTypeMRG() RngType { return nil }

func RngTypeTaus() RngType { return nil }

func RngTypeTaus2() RngType { return nil }

func RngTypeGFSR4() RngType { return nil }

func RngTypes() []RngType { return nil }

func RngTypeName(RngType) string { return "" }

func RngTypeMin(RngType) uint64 { return 0 }

func RngTypeMax(RngType) uint64 { return 0 }

func RngEnvSetup() RngType { return nil }

func RngDefault() RngType { return nil }

func RngDefaultSeed() uint64 { return 0 }

func RngAlloc(RngType) (Rng, error) { return nil, ErrNotBuilt }

func RngFree(Rng) {}

func RngSet(Rng, uint64) {}

func RngGet(Rng) uint64 { return 0 }

func RngUniform(Rng) float64 { return 0 }

func RngUniformPos(Rng) float64 { return 0 }

func RngUniformInt(Rng, uint64) uint64 { return 0 }

func RngName(Rng) string { return "" }

func RngMin(Rng) uint64 { return 0 }

func RngMax(Rng) uint64 { return 0 }

func RngState(Rng) []byte { return nil }

func RngMemcpy(Rng, Rng) error { return ErrNotBuilt }

func RngClone(Rng) (Rng, error) { return nil, ErrNotBuilt }

func RanShuffleFloat64(Rng, []float64) {}

func RanShuffleInt(Rng, []int) {}

func RanChooseFloat64(Rng, []float64, []float64) error { return ErrNotBuilt }

func RanSampleFloat64(Rng, []float64, []float64) {}

func RanGaussian(Rng, float64) float64 { return 0 }

func RanGaussianZiggurat(Rng, float64) float64 { return 0 }

func RanGaussianRatioMethod(Rng, float64) float64 { return 0 }

func RanUGaussian(Rng) float64 { return 0 }

func RanGaussianTail(Rng, float64, float64) float64 { return 0 }

func RanUGaussianTail(Rng, float64) float64 { return 0 }

func RanBivariateGaussian(Rng, float64, float64, float64) (x, y float64) { return 0, 0 }

func RanExponential(Rng, float64) float64 { return 0 }

func RanLaplace(Rng, float64) float64 { return 0 }

func RanExppow(Rng, float64, float64) float64 { return 0 }

func RanCauchy(Rng, float64) float64 { return 0 }

func RanRayleigh(Rng, float64) float64 { return 0 }

func RanRayleighTail(Rng, float64, float64) float64 { return 0 }

func RanLandau(Rng) float64 { return 0 }

func RanLevy(Rng, float64, float64) float64 { return 0 }

func RanLevySkew(Rng, float64, float64, float64) float64 { return 0 }

func RanGamma(Rng, float64, float64) float64 { return 0 }

func RanGammaKnuth(Rng, float64, float64) float64 { return 0 }

func RanFlat(Rng, float64, float64) float64 { return 0 }

func RanLognormal(Rng, float64, float64) float64 { return 0 }

func RanChisq(Rng, float64) float64 { return 0 }

func RanFdist(Rng, float64, float64) float64 { return 0 }

func RanTdist(Rng, float64) float64 { return 0 }

func RanBeta(Rng, float64, float64) float64 { return 0 }

func RanLogistic(Rng, float64) float64 { return 0 }

func RanPareto(Rng, float64, float64) float64 { return 0 }

func RanWeibull(Rng, float64, float64) float64 { return 0 }

func RanGumbel1(Rng, float64, float64) float64 { return 0 }

func RanGumbel2(Rng, float64, float64) float64 { return 0 }

func RanDirichlet(Rng, []float64, []float64) {}

func RanPoisson(Rng, float64) uint { return 0 }

func RanBernoulli(Rng, float64) uint { return 0 }

func RanBinomial(Rng, float64, uint) uint { return 0 }

func RanMultinomial(Rng, uint, []float64, []uint32) {}

func RanNegativeBinomial(Rng, float64, float64) uint { return 0 }

func RanPascal(Rng, float64, uint) uint { return 0 }

func RanGeometric(Rng, float64) uint { return 0 }

func RanHypergeometric(Rng, uint, uint, uint) uint { return 0 }

func RanLogarithmic(Rng, float64) uint { return 0 }

func RanDir2D(Rng) (x, y float64) { return 0, 0 }

func RanDir2DTrigMethod(Rng) (x, y float64) { return 0, 0 }

func RanDir3D(Rng) (x, y, z float64) { return 0, 0, 0 }

func RanDirND(Rng, []float64) {}

// Quasi-random sequence stubs.

// QrngType is the native descriptor for a quasi-random sequence algorithm.
type QrngType = unsafe.Pointer

// Qrng is the native handle for a quasi-random sequence instance.
type Qrng = unsafe.Pointer

func QrngTypeSobol() QrngType { return nil }

func QrngTypeNiederreiter2() QrngType { return nil }

func QrngTypeHalton() QrngType { return nil }

func QrngTypeReverseHalton() QrngType { return nil }

func QrngTypeName(QrngType) string { return "" }

func QrngTypeMaxDimension(QrngType) int { return 0 }

func QrngAlloc(QrngType, int) (Qrng, error) { return nil, ErrNotBuilt }

func QrngFree(Qrng) {}

func QrngInit(Qrng) {}

func QrngGet(Qrng, []float64) error { return ErrNotBuilt }

func QrngName(Qrng) string { return "" }

func QrngDimension(Qrng) int { return 0 }

func QrngMemcpy(Qrng, Qrng) error { return ErrNotBuilt }

func QrngClone(Qrng) (Qrng, error) { return nil, ErrNotBuilt }

// Statistics stubs.

func StatsMean([]float64) float64 { return 0 }

func StatsVariance([]float64) float64 { return 0 }

func StatsVarianceM([]float64, float64) float64 { return 0 }

func StatsSD([]float64) float64 { return 0 }

func StatsSDM([]float64, float64) float64 { return 0 }

func StatsTSS([]float64) float64 { return 0 }

func StatsAbsDev([]float64) float64 { return 0 }

func StatsSkew([]float64) float64 { return 0 }

func StatsKurtosis([]float64) float64 { return 0 }

func StatsLag1Autocorrelation([]float64) float64 { return 0 }

func StatsCovariance([]float64, []float64) float64 { return 0 }

func StatsCorrelation([]float64, []float64) float64 { return 0 }

func StatsSpearman([]float64, []float64, []float64) float64 { return 0 }

func StatsMax([]float64) float64 { return 0 }

func StatsMin([]float64) float64 { return 0 }

func StatsMinmax([]float64) (min, max float64) { return 0, 0 }

func StatsMaxIndex([]float64) int { return 0 }

func StatsMinIndex([]float64) int { return 0 }

func StatsMedianFromSortedData([]float64) float64 { return 0 }

func StatsQuantileFromSortedData([]float64, float64) float64 { return 0 }

// Numerical integration stubs.

// IntegWorkspace is the native handle for an adaptive integration
// workspace.
type IntegWorkspace = unsafe.Pointer

func IntegWorkspaceAlloc(int) (IntegWorkspace, error) { return nil, ErrNotBuilt }

func IntegWorkspaceFree(IntegWorkspace) {}

func IntegWorkspaceLimit(IntegWorkspace) int { return 0 }

func IntegQng(func(float64) float64, float64, float64, float64, float64) (result, abserr float64, neval int, err error) {
	return 0, 0, 0, ErrNotBuilt
}

func IntegQag(func(float64) float64, float64, float64, float64, float64, int, int, IntegWorkspace) (result, abserr float64, err error) {
	return 0, 0, ErrNotBuilt
}

func IntegQags(func(float64) float64, float64, float64, float64, float64, int, IntegWorkspace) (result, abserr float64, err error) {
	return 0, 0, ErrNotBuilt
}

func IntegQagi(func(float64) float64, float64, float64, int, IntegWorkspace) (result, abserr float64, err error) {
	return 0, 0, ErrNotBuilt
}

func IntegQagiu(func(float64) float64, float64, float64, float64, int, IntegWorkspace) (result, abserr float64, err error) {
	return 0, 0, ErrNotBuilt
}

func IntegQagil(func(float64) float64, float64, float64, float64, int, IntegWorkspace) (result, abserr float64, err error) {
	return 0, 0, ErrNotBuilt
}

// Interpolation stubs.

// InterpType is the native descriptor for an interpolation scheme.
type InterpType = unsafe.Pointer

// Accel is the native handle for an interpolation lookup accelerator.
type Accel = unsafe.Pointer

// Spline is the native handle for a gsl_spline.
type Spline = unsafe.Pointer

func InterpTypeLinear() InterpType { return nil }

func InterpTypePolynomial() InterpType { return nil }

func InterpTypeCSpline() InterpType { return nil }

func InterpTypeCSplinePeriodic() InterpType { return nil }

func InterpTypeAkima() InterpType { return nil }

func InterpTypeAkimaPeriodic() InterpType { return nil }

func InterpTypeSteffen() InterpType { return nil }

func InterpTypeName(InterpType) string { return "" }

func InterpTypeMinSize(InterpType) int { return 0 }

func AccelAlloc() (Accel, error) { return nil, ErrNotBuilt }

func AccelFree(Accel) {}

func AccelFind(Accel, []float64, float64) int { return 0 }

func AccelReset(Accel) error { return ErrNotBuilt }

func AccelStats(Accel) (hits, misses uint64) { return 0, 0 }

func SplineAlloc(InterpType, int) (Spline, error) { return nil, ErrNotBuilt }

func SplineFree(Spline) {}

func SplineInit(Spline, []float64, []float64) error { return ErrNotBuilt }

func SplineName(Spline) string { return "" }

func SplineMinSize(Spline) int { return 0 }

func SplineEval(Spline, float64, Accel) float64 { return 0 }

func SplineEvalE(Spline, float64, Accel) (float64, error) { return 0, ErrNotBuilt }

func SplineEvalDerivE(Spline, float64, Accel) (float64, error) { return 0, ErrNotBuilt }

func SplineEvalDeriv2E(Spline, float64, Accel) (float64, error) { return 0, ErrNotBuilt }

func SplineEvalIntegE(Spline, float64, float64, Accel) (float64, error) { return 0, ErrNotBuilt }

// Ordinary differential equation stubs.

// OdeStepType is the native descriptor for a stepping algorithm.
type OdeStepType = unsafe.Pointer

// OdeStep is the native handle for a stepper instance.
type OdeStep = unsafe.Pointer

// OdeControl is the native handle for a step size control object.
type OdeControl = unsafe.Pointer

// OdeEvolve is the native handle for an evolution object.
type OdeEvolve = unsafe.Pointer

// OdeDriver is the native handle for a driver combining step, control and
// evolve.
type OdeDriver = unsafe.Pointer

// OdeSystem owns the C-side system struct in native builds. The stub
// flavor carries no state.
type OdeSystem struct{}

func StepTypeRK2() OdeStepType { return nil }

func StepTypeRK4() OdeStepType { return nil }

func StepTypeRKF45() OdeStepType { return nil }

func StepTypeRKCK() OdeStepType { return nil }

func StepTypeRK8PD() OdeStepType { return nil }

func StepTypeRK1Imp() OdeStepType { return nil }

func StepTypeRK2Imp() OdeStepType { return nil }

func StepTypeRK4Imp() OdeStepType { return nil }

func StepTypeBSImp() OdeStepType { return nil }

func StepTypeMSAdams() OdeStepType { return nil }

func StepTypeMSBDF() OdeStepType { return nil }

func SystemAlloc(func(float64, []float64, []float64) error, func(float64, []float64, []float64, []float64) error, int) (*OdeSystem, error) {
	return nil, ErrNotBuilt
}

func SystemFree(*OdeSystem) {}

func StepAlloc(OdeStepType, int) (OdeStep, error) { return nil, ErrNotBuilt }

func StepFree(OdeStep) {}

func StepReset(OdeStep) error { return ErrNotBuilt }

func StepName(OdeStep) string { return "" }

func StepOrder(OdeStep) int { return 0 }

func StepSetDriver(OdeStep, OdeDriver) error { return ErrNotBuilt }

func StepApply(OdeStep, float64, float64, []float64, []float64, []float64, []float64, *OdeSystem) error {
	return ErrNotBuilt
}

func ControlAllocStandard(float64, float64, float64, float64) (OdeControl, error) {
	return nil, ErrNotBuilt
}

func ControlAllocY(float64, float64) (OdeControl, error) { return nil, ErrNotBuilt }

func ControlAllocYP(float64, float64) (OdeControl, error) { return nil, ErrNotBuilt }

func ControlAllocScaled(float64, float64, float64, float64, []float64) (OdeControl, error) {
	return nil, ErrNotBuilt
}

func ControlFree(OdeControl) {}

func ControlName(OdeControl) string { return "" }

func ControlHAdjust(OdeControl, OdeStep, []float64, []float64, []float64, float64) (adj int, newH float64) {
	return 0, 0
}

func ControlErrLevel(OdeControl, float64, float64, float64, int) (float64, error) {
	return 0, ErrNotBuilt
}

func EvolveAlloc(int) (OdeEvolve, error) { return nil, ErrNotBuilt }

func EvolveFree(OdeEvolve) {}

func EvolveReset(OdeEvolve) error { return ErrNotBuilt }

func EvolveApply(OdeEvolve, OdeControl, OdeStep, *OdeSystem, float64, float64, float64, []float64) (tOut, hOut float64, err error) {
	return 0, 0, ErrNotBuilt
}

func EvolveApplyFixedStep(OdeEvolve, OdeControl, OdeStep, *OdeSystem, float64, float64, []float64) (tOut float64, err error) {
	return 0, ErrNotBuilt
}

func DriverAllocY(*OdeSystem, OdeStepType, float64, float64, float64) (OdeDriver, error) {
	return nil, ErrNotBuilt
}

func DriverAllocYP(*OdeSystem, OdeStepType, float64, float64, float64) (OdeDriver, error) {
	return nil, ErrNotBuilt
}

func DriverAllocStandard(*OdeSystem, OdeStepType, float64, float64, float64, float64, float64) (OdeDriver, error) {
	return nil, ErrNotBuilt
}

func DriverAllocScaled(*OdeSystem, OdeStepType, float64, float64, float64, float64, float64, []float64) (OdeDriver, error) {
	return nil, ErrNotBuilt
}

func DriverFree(OdeDriver) {}

func DriverSetHMin(OdeDriver, float64) error { return ErrNotBuilt }

func DriverSetHMax(OdeDriver, float64) error { return ErrNotBuilt }

func DriverSetNMax(OdeDriver, uint64) error { return ErrNotBuilt }

func DriverApply(OdeDriver, float64, float64, []float64) (float64, error) {
	return 0, ErrNotBuilt
}

func DriverApplyFixedStep(OdeDriver, float64, float64, uint64, []float64) (float64, error) {
	return 0, ErrNotBuilt
}

func DriverReset(OdeDriver) error { return ErrNotBuilt }

func DriverResetHStart(OdeDriver, float64) error { return ErrNotBuilt }

// Numerical differentiation stubs.

func DerivCentral(func(float64) float64, float64, float64) (result, abserr float64, err error) {
	return 0, 0, ErrNotBuilt
}

func DerivForward(func(float64) float64, float64, float64) (result, abserr float64, err error) {
	return 0, 0, ErrNotBuilt
}

func DerivBackward(func(float64) float64, float64, float64) (result, abserr float64, err error) {
	return 0, 0, ErrNotBuilt
}
