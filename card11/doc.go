// Package card11 bridges card-resident certificate objects into a
// PKCS#11 shim.
//
// The core codec packages (tlv, sigutil, certutil, piv) report errors
// through a single internal taxonomy and never see PKCS#11 status
// codes; card11 is the only place where that taxonomy is converted to
// CKR return values, and where card algorithms are mapped to CKK key
// types and object attribute templates.
package card11
