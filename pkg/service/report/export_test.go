package report

var ExpectedPageCount = expectedPageCount
